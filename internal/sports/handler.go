package sports

import (
	"context"
	"net/http"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=sports_test

type sportsSource interface {
	GetSports(ctx context.Context) ([]Sport, error)
}

type Handler struct {
	source     sportsSource
	translator Translator
}

func NewHandler(source sportsSource, translator Translator) *Handler {
	return &Handler{
		source:     source,
		translator: translator,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sports", handler.HandleList).Methods("GET", "OPTIONS").Name("list-sports")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.list")
	defer span.End()

	allSports, err := handler.source.GetSports(ctx)
	if err != nil {
		log.Errorf("failed to get sports: %s", err)
		http.Error(w, "failed to get sports", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, Translate(allSports, handler.translator), http.StatusOK)
}
