package dashboard

import (
	"net/http"
	"strconv"

	"github.com/2beens/fitcoach/internal/auth"
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

// HandleGet serves GET /dashboard. ?refresh=true skips the cache.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	pkg.WriteJSON(w, h.service.Load(ctx, userID, refresh), http.StatusOK)
}
