package profile

import (
	"encoding/json"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/backend"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := h.service.Get(ctx, userID)
	if err != nil {
		log.Errorf("get profile for [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "failed to load profile", nil, http.StatusBadGateway)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p backend.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Tracef("save profile, unmarshal json: %s", err)
		http.Error(w, "error, invalid profile", http.StatusBadRequest)
		return
	}
	if err := p.Validate(); err != nil {
		pkg.WriteJSONError(w, err.Error(), nil, http.StatusBadRequest)
		return
	}
	p.Phase = backend.Phase(strings.ToLower(string(p.Phase)))

	if err := h.service.Save(ctx, userID, p); err != nil {
		log.Errorf("save profile for [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "failed to save profile", nil, http.StatusBadGateway)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}
