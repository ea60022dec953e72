package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=preferences_test

type preferencesRepo interface {
	Get(ctx context.Context, user string) (*Preferences, error)
	Upsert(ctx context.Context, p *Preferences) error
}

type Handler struct {
	repo preferencesRepo
}

func NewHandler(repo preferencesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/preferences/{user}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-preferences")
	r.HandleFunc("/preferences/{user}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-preferences")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.get")
	defer span.End()

	user := mux.Vars(r)["user"]
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	p, err := handler.repo.Get(ctx, user)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Errorf("failed to get preferences for [%s]: %s", user, err)
			http.Error(w, "failed to get preferences", http.StatusInternalServerError)
			return
		}
		defaults := Default(user)
		p = &defaults
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.update")
	defer span.End()

	user := mux.Vars(r)["user"]
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	p := Default(user)
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("update preferences, unmarshal json params: %s", err)
		http.Error(w, "update preferences failed", http.StatusBadRequest)
		return
	}
	// the path decides whose preferences are updated
	p.User = user

	if err := p.Validate(); err != nil {
		http.Error(w, "invalid preferences: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Upsert(ctx, &p); err != nil {
		log.Errorf("failed to update preferences for [%s]: %s", user, err)
		http.Error(w, "failed to update preferences", http.StatusInternalServerError)
		return
	}

	log.Debugf("preferences updated for user [%s]", user)
	pkg.WriteJSON(w, p, http.StatusOK)
}
