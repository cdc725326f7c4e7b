// Package bodymetrics turns an onboarding form into the numbers the dashboard
// shows: BMI and its category, the training phase, the protein and calorie
// targets and a status label.
package bodymetrics

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type Activity string

const (
	ActivitySedentary Activity = "sedentary"
	ActivityLight     Activity = "light"
	ActivityModerate  Activity = "moderate"
	ActivityVery      Activity = "very"
	ActivityExtreme   Activity = "extreme"
)

const (
	MinAge    = 10
	MaxAge    = 120
	MinWeight = 20.0
	MaxWeight = 300.0
	MinHeight = 100.0
	MaxHeight = 250.0
)

// OnboardingRecord is what the user submits on the onboarding form.
// Weight is in kilograms, height in centimetres.
type OnboardingRecord struct {
	UserID             string   `json:"user_id"`
	Gender             Gender   `json:"gender"`
	Age                int      `json:"age"`
	Weight             float64  `json:"weight"`
	Height             float64  `json:"height"`
	Goal               Goal     `json:"goal"`
	Activity           Activity `json:"activity"`
	CalculatedCalories *float64 `json:"calculated_calories,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "invalid onboarding record: " + strings.Join(parts, "; ")
}

// Validate returns ValidationErrors listing every offending field, or nil.
func (r *OnboardingRecord) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(r.UserID) == "" {
		add("user_id", "required")
	}
	switch r.Gender {
	case GenderMale, GenderFemale:
	default:
		add("gender", "unknown gender %q", r.Gender)
	}
	if r.Age < MinAge || r.Age > MaxAge {
		add("age", "must be between %d and %d", MinAge, MaxAge)
	}
	if r.Weight < MinWeight || r.Weight > MaxWeight {
		add("weight", "must be between %.0f and %.0f kg", MinWeight, MaxWeight)
	}
	if r.Height < MinHeight || r.Height > MaxHeight {
		add("height", "must be between %.0f and %.0f cm", MinHeight, MaxHeight)
	}
	switch r.Goal {
	case GoalLose, GoalMaintain, GoalGain:
	default:
		add("goal", "unknown goal %q", r.Goal)
	}
	if _, ok := activityMultipliers[r.Activity]; !ok {
		add("activity", "unknown activity level %q", r.Activity)
	}
	if r.CalculatedCalories != nil && *r.CalculatedCalories <= 0 {
		add("calculated_calories", "must be positive")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
