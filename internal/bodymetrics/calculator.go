package bodymetrics

import "math"

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

type Phase string

const (
	PhaseCutting     Phase = "Cutting"
	PhaseMaintenance Phase = "Maintenance"
	PhaseBulking     Phase = "Bulking"
)

type Status string

const (
	StatusActiveCut  Status = "Active Cut"
	StatusStable     Status = "Stable"
	StatusActiveBulk Status = "Active Bulk"
)

// DefaultCalorieTarget is used when the record carries no precomputed calories.
const DefaultCalorieTarget = 2000

type ComputedMetrics struct {
	BMI           float64     `json:"bmi"`
	BMICategory   BMICategory `json:"bmi_category"`
	Phase         Phase       `json:"phase"`
	CalorieTarget int         `json:"calorie_target"`
	Status        Status      `json:"status"`
	ProteinTarget int         `json:"protein_target"`
}

// ComputeBMI divides weight (kg) by height (cm) in metres squared, rounded to
// one decimal. Inputs are not validated, a zero height yields +Inf.
func ComputeBMI(weight, height float64) float64 {
	m := height / 100
	return math.Round(weight/(m*m)*10) / 10
}

func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func GoalToPhase(goal Goal) Phase {
	switch goal {
	case GoalLose:
		return PhaseCutting
	case GoalGain:
		return PhaseBulking
	default:
		return PhaseMaintenance
	}
}

// ProteinTarget is grams per day: 2.2 g/kg when gaining, 2.0 when losing and 1.6 otherwise.
func ProteinTarget(weight float64, goal Goal) int {
	multiplier := 1.6
	switch goal {
	case GoalGain:
		multiplier = 2.2
	case GoalLose:
		multiplier = 2.0
	}
	return int(math.Round(weight * multiplier))
}

func StatusFromGoal(goal Goal) Status {
	switch goal {
	case GoalLose:
		return StatusActiveCut
	case GoalGain:
		return StatusActiveBulk
	default:
		return StatusStable
	}
}

// ComputeUserMetrics derives everything the dashboard needs from a record.
// It consumes CalculatedCalories as is; use CalorieTarget to fill it.
func ComputeUserMetrics(record OnboardingRecord) ComputedMetrics {
	bmi := ComputeBMI(record.Weight, record.Height)

	calories := DefaultCalorieTarget
	if record.CalculatedCalories != nil {
		calories = int(math.Round(*record.CalculatedCalories))
	}

	return ComputedMetrics{
		BMI:           bmi,
		BMICategory:   CategoryForBMI(bmi),
		Phase:         GoalToPhase(record.Goal),
		CalorieTarget: calories,
		Status:        StatusFromGoal(record.Goal),
		ProteinTarget: ProteinTarget(record.Weight, record.Goal),
	}
}
