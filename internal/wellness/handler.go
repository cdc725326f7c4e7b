// Package wellness forwards biometric check-ins to the agent backend and
// tells the rest of the service that the user's wellness data moved.
package wellness

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/backend"
	"github.com/2beens/fitcoach/internal/notify"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=wellness_test

type analyzer interface {
	AnalyzeWellness(ctx context.Context, req backend.WellnessRequest) (*backend.WellnessAnalysis, error)
}

type publisher interface {
	Publish(ctx context.Context, event notify.Event)
}

type Handler struct {
	analyzer  analyzer
	publisher publisher
	now       func() time.Time
}

func NewHandler(analyzer analyzer, publisher publisher) *Handler {
	return &Handler{
		analyzer:  analyzer,
		publisher: publisher,
		now:       time.Now,
	}
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.analyze")
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

	var req backend.WellnessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("wellness analyze, unmarshal json: %s", err)
		http.Error(w, "error, invalid wellness data", http.StatusBadRequest)
		return
	}
	req.UserID = userID
	if req.Date == "" {
		req.Date = h.now().Format(time.DateOnly)
	}

	if err := req.Validate(); err != nil {
		pkg.WriteJSONError(w, err.Error(), nil, http.StatusBadRequest)
		return
	}

	analysis, err := h.analyzer.AnalyzeWellness(ctx, req)
	if err != nil {
		log.Errorf("wellness analyze for [%s]: %s", userID, err)
		status := http.StatusBadGateway
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		pkg.WriteJSONError(w, "wellness analysis failed", nil, status)
		return
	}

	// the backend stored a new log, dashboard numbers are stale now
	h.publisher.Publish(ctx, notify.Event{Topic: notify.TopicWellnessChanged, UserID: userID})

	pkg.WriteJSON(w, analysis, http.StatusOK)
}
