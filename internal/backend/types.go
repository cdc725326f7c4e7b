package backend

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
)

type DashboardMetrics struct {
	SleepScore     int    `json:"sleep_score"`
	StressLevel    string `json:"stress_level"`
	HRV            string `json:"hrv"`
	Readiness      string `json:"readiness"`
	ReadinessScore int    `json:"readiness_score"`
}

// DefaultMetrics is shown whenever the dashboard metrics cannot be fetched.
func DefaultMetrics() DashboardMetrics {
	return DashboardMetrics{
		SleepScore:     70,
		StressLevel:    "Moderate",
		HRV:            "Normal",
		Readiness:      "Good",
		ReadinessScore: 70,
	}
}

func (m *DashboardMetrics) Validate() error {
	if m.SleepScore < 0 || m.SleepScore > 100 {
		return fmt.Errorf("sleep_score out of range: %d", m.SleepScore)
	}
	if m.ReadinessScore < 0 || m.ReadinessScore > 100 {
		return fmt.Errorf("readiness_score out of range: %d", m.ReadinessScore)
	}
	if m.StressLevel == "" || m.HRV == "" || m.Readiness == "" {
		return errors.New("missing wellness labels")
	}
	return nil
}

type Phase string

const (
	PhaseCutting     Phase = "cutting"
	PhaseMaintenance Phase = "maintenance"
	PhaseBulking     Phase = "bulking"
)

type UserProfile struct {
	Calories      int    `json:"calories"`
	Phase         Phase  `json:"phase"`
	ProteinTarget int    `json:"protein_target"`
	Notes         string `json:"notes"`
}

// DefaultProfile is used when the backend has no profile stored yet.
func DefaultProfile() UserProfile {
	return UserProfile{
		Calories:      2000,
		Phase:         PhaseMaintenance,
		ProteinTarget: 150,
	}
}

func (p *UserProfile) Validate() error {
	if p.Calories <= 0 {
		return fmt.Errorf("calories must be positive, got %d", p.Calories)
	}
	if p.ProteinTarget < 0 {
		return fmt.Errorf("protein_target must not be negative, got %d", p.ProteinTarget)
	}
	switch Phase(strings.ToLower(string(p.Phase))) {
	case PhaseCutting, PhaseMaintenance, PhaseBulking:
	default:
		return fmt.Errorf("unknown phase %q", p.Phase)
	}
	return nil
}

type profileResponse struct {
	Status  string       `json:"status"`
	Profile *UserProfile `json:"profile"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	LogID   string `json:"log_id,omitempty"`
}

type WellnessRequest struct {
	UserID     string  `json:"user_id"`
	Date       string  `json:"date,omitempty"`
	SleepHours float64 `json:"sleep_hours"`
	HRV        int     `json:"hrv"`
	RHR        int     `json:"rhr"`
}

func (r *WellnessRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id required")
	}
	if r.SleepHours < 0 || r.SleepHours > 24 {
		return fmt.Errorf("sleep_hours must be between 0 and 24, got %.1f", r.SleepHours)
	}
	if r.HRV <= 0 {
		return fmt.Errorf("hrv must be positive, got %d", r.HRV)
	}
	if r.RHR <= 0 {
		return fmt.Errorf("rhr must be positive, got %d", r.RHR)
	}
	return nil
}

type Analysis struct {
	ReadinessScore      int    `json:"readiness_score"`
	ExecutiveSummary    string `json:"executive_summary"`
	MicroIntervention   string `json:"micro_intervention"`
	TrainingProtocol    string `json:"training_protocol"`
	CognitiveFraming    string `json:"cognitive_framing"`
	NutritionalStrategy string `json:"nutritional_strategy"`
}

type WellnessAnalysis struct {
	Status   string   `json:"status"`
	LogID    string   `json:"log_id"`
	Analysis Analysis `json:"analysis"`
}

func (a *WellnessAnalysis) Validate() error {
	if a.Status != StatusSuccess {
		return fmt.Errorf("unexpected status %q", a.Status)
	}
	if a.Analysis.ReadinessScore < 0 || a.Analysis.ReadinessScore > 100 {
		return fmt.Errorf("readiness_score out of range: %d", a.Analysis.ReadinessScore)
	}
	if a.Analysis.ExecutiveSummary == "" {
		return errors.New("missing executive_summary")
	}
	return nil
}
