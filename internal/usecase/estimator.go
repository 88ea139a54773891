package usecase

import (
	"fmt"

	"github.com/nutritrack/backend/internal/domain"
)

// Accepted body profile ranges
const (
	MinAgeYears = 12
	MaxAgeYears = 120
	MinWeightKg = 30.0
	MaxWeightKg = 300.0
	MinHeightCm = 100.0
	MaxHeightCm = 250.0
)

const (
	proteinGramsPerKg  = 2.0
	fatCalorieShare    = 0.25
	kcalPerGramFat     = 9.0
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	baseWaterMlPerKg   = 35.0
)

// activityMultiplier returns the TDEE multiplier applied to BMR.
func activityMultiplier(level domain.ActivityLevel) float64 {
	switch level {
	case domain.ActivitySedentary:
		return 1.2
	case domain.ActivityLight:
		return 1.375
	case domain.ActivityModerate:
		return 1.55
	case domain.ActivityActive:
		return 1.725
	case domain.ActivityVeryActive:
		return 1.9
	}
	return 1.2
}

// waterActivityMultiplier scales the base water intake by activity.
func waterActivityMultiplier(level domain.ActivityLevel) float64 {
	switch level {
	case domain.ActivitySedentary:
		return 1.0
	case domain.ActivityLight:
		return 1.1
	case domain.ActivityModerate:
		return 1.2
	case domain.ActivityActive:
		return 1.3
	case domain.ActivityVeryActive:
		return 1.4
	}
	return 1.0
}

// goalAdjustment is the kcal offset added to maintenance calories.
func goalAdjustment(goal domain.Goal) int {
	switch goal {
	case domain.GoalLoseWeight:
		return -500
	case domain.GoalMaintain:
		return 0
	case domain.GoalGainMuscle:
		return 300
	case domain.GoalGainWeight:
		return 500
	}
	return 0
}

// BMR returns the Mifflin-St Jeor basal metabolic rate without the sex term.
func BMR(profile domain.BodyProfile) float64 {
	return 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.AgeYears) + 5
}

// Estimate derives the daily nutrition target for a validated profile.
//
// The result is deterministic. Profiles outside the validated domain still
// produce numbers (carbs can go negative) and callers are expected to run
// ValidateBodyProfile first.
func Estimate(profile domain.BodyProfile) domain.NutritionTarget {
	calories := roundInt(BMR(profile)*activityMultiplier(profile.ActivityLevel)) + goalAdjustment(profile.Goal)

	protein := roundInt(profile.WeightKg * proteinGramsPerKg)
	fats := roundInt(float64(calories) * fatCalorieShare / kcalPerGramFat)
	remaining := float64(calories) - (float64(protein)*kcalPerGramProtein + float64(fats)*kcalPerGramFat)
	carbs := roundInt(remaining / kcalPerGramCarbs)

	waterMl := profile.WeightKg * baseWaterMlPerKg * waterActivityMultiplier(profile.ActivityLevel)

	return domain.NutritionTarget{
		DailyCalories:    calories,
		DailyProtein:     protein,
		DailyCarbs:       carbs,
		DailyFats:        fats,
		DailyWaterLiters: roundTo(waterMl/1000, 2),
	}
}

// ValidateBodyProfile checks that every field is inside the accepted range.
// Errors wrap domain.ErrInvalidProfile.
func ValidateBodyProfile(profile domain.BodyProfile) error {
	if profile.AgeYears < MinAgeYears || profile.AgeYears > MaxAgeYears {
		return fmt.Errorf("%w: age must be between %d and %d years, got %d",
			domain.ErrInvalidProfile, MinAgeYears, MaxAgeYears, profile.AgeYears)
	}
	if !(profile.WeightKg >= MinWeightKg && profile.WeightKg <= MaxWeightKg) {
		return fmt.Errorf("%w: weight must be between %.0f and %.0f kg, got %v",
			domain.ErrInvalidProfile, MinWeightKg, MaxWeightKg, profile.WeightKg)
	}
	if !(profile.HeightCm >= MinHeightCm && profile.HeightCm <= MaxHeightCm) {
		return fmt.Errorf("%w: height must be between %.0f and %.0f cm, got %v",
			domain.ErrInvalidProfile, MinHeightCm, MaxHeightCm, profile.HeightCm)
	}
	if !profile.ActivityLevel.Valid() {
		return fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidProfile, profile.ActivityLevel)
	}
	if !profile.Goal.Valid() {
		return fmt.Errorf("%w: unknown goal %q", domain.ErrInvalidProfile, profile.Goal)
	}
	return nil
}
