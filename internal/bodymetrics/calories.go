package bodymetrics

import "math"

var activityMultipliers = map[Activity]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityExtreme:   1.9,
}

const goalCalorieDelta = 500

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal per day.
func BMR(record OnboardingRecord) float64 {
	bmr := 10*record.Weight + 6.25*record.Height - 5*float64(record.Age)
	if record.Gender == GenderFemale {
		return bmr - 161
	}
	return bmr + 5
}

// ActivityMultiplier falls back to sedentary for unknown levels.
func ActivityMultiplier(activity Activity) float64 {
	if m, ok := activityMultipliers[activity]; ok {
		return m
	}
	return activityMultipliers[ActivitySedentary]
}

func TDEE(record OnboardingRecord) float64 {
	return BMR(record) * ActivityMultiplier(record.Activity)
}

// CalorieTarget is the daily intake for the record's goal, rounded to whole kcal.
func CalorieTarget(record OnboardingRecord) float64 {
	target := TDEE(record)
	switch record.Goal {
	case GoalGain:
		target += goalCalorieDelta
	case GoalLose:
		target -= goalCalorieDelta
	}
	return math.Round(target)
}

// WithCalorieTarget returns a copy of record with CalculatedCalories filled
// in when it is missing.
func WithCalorieTarget(record OnboardingRecord) OnboardingRecord {
	if record.CalculatedCalories != nil {
		return record
	}
	calories := CalorieTarget(record)
	record.CalculatedCalories = &calories
	return record
}
