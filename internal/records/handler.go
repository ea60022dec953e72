package records

import (
	"context"
	"net/http"

	"github.com/2beens/fitstats/internal/preferences"
	"github.com/2beens/fitstats/internal/sports"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=records_test

type recordsSource interface {
	GetSports(ctx context.Context) ([]sports.Sport, error)
	GetRecords(ctx context.Context, user string) ([]Record, error)
}

type preferencesStore interface {
	GetOrDefault(ctx context.Context, user string) (*preferences.Preferences, error)
}

type Handler struct {
	source     recordsSource
	prefs      preferencesStore
	translator sports.Translator
}

func NewHandler(source recordsSource, prefs preferencesStore, translator sports.Translator) *Handler {
	if translator == nil {
		translator = sports.Identity
	}
	return &Handler{
		source:     source,
		prefs:      prefs,
		translator: translator,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/records/{user}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-records")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.get")
	defer span.End()

	user := mux.Vars(r)["user"]
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	prefs, err := handler.prefs.GetOrDefault(ctx, user)
	if err != nil {
		log.Errorf("get records, failed to get preferences for [%s]: %s", user, err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}

	allSports, err := handler.source.GetSports(ctx)
	if err != nil {
		log.Errorf("get records, failed to get sports: %s", err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}

	userRecords, err := handler.source.GetRecords(ctx, user)
	if err != nil {
		log.Errorf("failed to get records for [%s]: %s", user, err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("records.count", len(userRecords)))

	groups, err := GetRecordsBySports(
		userRecords,
		sports.Translate(allSports, handler.translator),
		prefs.Timezone,
		prefs.ImperialUnits,
		prefs.DisplayAscent,
		prefs.DateFormat,
	)
	if err != nil {
		log.Errorf("failed to format records for [%s]: %s", user, err)
		http.Error(w, "failed to format records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, groups, http.StatusOK)
}
