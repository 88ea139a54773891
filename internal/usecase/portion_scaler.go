package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nutritrack/backend/internal/domain"
)

const (
	// DefaultPortionGrams is used when the portion text is empty or unusable
	DefaultPortionGrams = 100.0
	// MaxPortionGrams is the largest portion accepted from free text
	MaxPortionGrams = 10000.0
	// catalogBaseUnits is the quantity catalog values are expressed per
	catalogBaseUnits = 100.0
)

// Intake level thresholds, in percent of the daily target
const (
	highIntakePercent     = 80.0
	moderateIntakePercent = 50.0
)

// ParsePortionInput turns user-entered portion text into grams.
// Empty, non-numeric or oversized input falls back to DefaultPortionGrams.
// Zero and negative numbers are passed through so Scale can reject them.
func ParsePortionInput(text string) float64 {
	text = strings.TrimSpace(strings.Replace(text, ",", ".", 1))
	if text == "" {
		return DefaultPortionGrams
	}
	portion, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(portion) || math.IsInf(portion, 0) || portion > MaxPortionGrams {
		return DefaultPortionGrams
	}
	return portion
}

// Scale adjusts a per-100-unit food record to the requested portion.
// Every nutrient is rounded to one decimal. Non-positive portions return
// domain.ErrInvalidPortion.
func Scale(record domain.FoodRecord, portionUnits float64) (domain.AdjustedFood, error) {
	if !(portionUnits > 0) || math.IsInf(portionUnits, 0) {
		return domain.AdjustedFood{}, fmt.Errorf("%w: got %v", domain.ErrInvalidPortion, portionUnits)
	}

	ratio := portionUnits / catalogBaseUnits
	scale := func(v float64) float64 {
		return roundTo(v*ratio, 1)
	}

	adjusted := domain.AdjustedFood{
		Name:         record.Name,
		PortionGrams: portionUnits,
		Calories:     scale(record.Calories),
		Protein:      scale(record.Protein),
		Carbs:        scale(record.Carbs),
		Fats:         scale(record.Fats),
		Fibres:       scale(record.Fibres),
		SodiumMg:     scale(record.SodiumMg),
	}
	if record.WaterMl != nil {
		water := scale(*record.WaterMl)
		adjusted.WaterMl = &water
	}

	return adjusted, nil
}

// PercentOfTarget returns value as a percentage of dailyTarget, capped at 100.
// A non-positive target yields 0.
func PercentOfTarget(value, dailyTarget float64) float64 {
	if dailyTarget <= 0 {
		return 0
	}
	return math.Min(value/dailyTarget*100, 100)
}

// LevelForPercent buckets a percentage for display.
func LevelForPercent(percent float64) domain.IntakeLevel {
	switch {
	case percent >= highIntakePercent:
		return domain.IntakeHigh
	case percent >= moderateIntakePercent:
		return domain.IntakeModerate
	default:
		return domain.IntakeLow
	}
}

func share(value float64, target int) domain.TargetShare {
	percent := PercentOfTarget(value, float64(target))
	return domain.TargetShare{Percent: percent, Level: LevelForPercent(percent)}
}

// Breakdown compares an adjusted food against a daily target.
// Returns nil when there is no target to compare against.
func Breakdown(food domain.AdjustedFood, target *domain.NutritionTarget) *domain.TargetBreakdown {
	if target == nil {
		return nil
	}
	return &domain.TargetBreakdown{
		Calories: share(food.Calories, target.DailyCalories),
		Protein:  share(food.Protein, target.DailyProtein),
		Carbs:    share(food.Carbs, target.DailyCarbs),
		Fats:     share(food.Fats, target.DailyFats),
	}
}
