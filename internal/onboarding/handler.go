package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/bodymetrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=onboarding_test

const DashboardPath = "/dashboard"

type recordStore interface {
	Save(ctx context.Context, record bodymetrics.OnboardingRecord) error
	Get(ctx context.Context, userID string) (*bodymetrics.OnboardingRecord, bool)
	SavedAt(ctx context.Context, userID string) (time.Time, bool)
}

type transitioner interface {
	Run(ctx context.Context, record bodymetrics.OnboardingRecord) error
}

type SubmitResponse struct {
	Metrics  bodymetrics.ComputedMetrics `json:"metrics"`
	Redirect string                      `json:"redirect"`
}

type RecordResponse struct {
	Record  bodymetrics.OnboardingRecord `json:"record"`
	Metrics bodymetrics.ComputedMetrics  `json:"metrics"`
	SavedAt *time.Time                   `json:"saved_at,omitempty"`
}

type Handler struct {
	store      recordStore
	transition transitioner
}

func NewHandler(store recordStore, transition transitioner) *Handler {
	return &Handler{
		store:      store,
		transition: transition,
	}
}

// HandleSubmit validates and stores the form locally, then holds the request
// on the transition gate until the remote save is done.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.onboarding.submit")
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

	var record bodymetrics.OnboardingRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("onboarding submit, unmarshal json: %s", err)
		http.Error(w, "error, invalid onboarding data", http.StatusBadRequest)
		return
	}
	record.UserID = userID

	if err := record.Validate(); err != nil {
		var validationErrs bodymetrics.ValidationErrors
		if errors.As(err, &validationErrs) {
			pkg.WriteJSONError(w, "invalid onboarding data", validationErrs, http.StatusBadRequest)
			return
		}
		http.Error(w, "error, invalid onboarding data", http.StatusBadRequest)
		return
	}

	record = bodymetrics.WithCalorieTarget(record)

	if err := h.store.Save(ctx, record); err != nil {
		log.Errorf("onboarding submit for [%s], save locally: %s", userID, err)
		http.Error(w, "error, failed to save onboarding data", http.StatusInternalServerError)
		return
	}

	if err := h.transition.Run(ctx, record); err != nil {
		log.Errorf("onboarding submit for [%s], transition: %s", userID, err)
		pkg.WriteJSONError(w, "failed to save onboarding data, please try again", nil, http.StatusBadGateway)
		return
	}

	pkg.WriteJSON(w, SubmitResponse{
		Metrics:  bodymetrics.ComputeUserMetrics(record),
		Redirect: DashboardPath,
	}, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.onboarding.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	record, found := h.store.Get(ctx, userID)
	if !found {
		http.Error(w, "onboarding data not found", http.StatusNotFound)
		return
	}

	resp := RecordResponse{
		Record:  *record,
		Metrics: bodymetrics.ComputeUserMetrics(*record),
	}
	if savedAt, ok := h.store.SavedAt(ctx, userID); ok {
		resp.SavedAt = &savedAt
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.onboarding.metrics")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	record, found := h.store.Get(ctx, userID)
	if !found {
		http.Error(w, "onboarding data not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, bodymetrics.ComputeUserMetrics(*record), http.StatusOK)
}
