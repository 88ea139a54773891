package domain

import (
	"fmt"
	"math"
	"strings"
)

// FoodRecord is a catalog entry. Nutrient values are per 100 units of the
// catalog's base unit (grams for almost everything).
type FoodRecord struct {
	Name     string   `json:"name" yaml:"name" binding:"required"`
	Portion  string   `json:"portion" yaml:"portion"` // display label, e.g. "100g"
	Calories float64  `json:"calories" yaml:"calories"`
	Protein  float64  `json:"protein" yaml:"protein"`
	Carbs    float64  `json:"carbs" yaml:"carbs"`
	Fats     float64  `json:"fats" yaml:"fats"`
	Fibres   float64  `json:"fibres" yaml:"fibres"`
	SodiumMg float64  `json:"sodiumMg" yaml:"sodium_mg"`
	WaterMl  *float64 `json:"waterMl,omitempty" yaml:"water_ml,omitempty"`
}

type nutrientValue struct {
	field string
	value float64
}

// Validate checks that the record has a name and that every nutrient is a
// finite, non-negative number.
func (f FoodRecord) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}

	nutrients := []nutrientValue{
		{"calories", f.Calories},
		{"protein", f.Protein},
		{"carbs", f.Carbs},
		{"fats", f.Fats},
		{"fibres", f.Fibres},
		{"sodium_mg", f.SodiumMg},
	}
	if f.WaterMl != nil {
		nutrients = append(nutrients, nutrientValue{"water_ml", *f.WaterMl})
	}

	for _, n := range nutrients {
		if !(n.value >= 0) || math.IsInf(n.value, 1) {
			return fmt.Errorf("%s: %s must be a non-negative number, got %v", f.Name, n.field, n.value)
		}
	}
	return nil
}

// AdjustedFood is a FoodRecord scaled to a custom portion. Never persisted.
type AdjustedFood struct {
	Name         string   `json:"name"`
	PortionGrams float64  `json:"portionGrams"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fats         float64  `json:"fats"`
	Fibres       float64  `json:"fibres"`
	SodiumMg     float64  `json:"sodiumMg"`
	WaterMl      *float64 `json:"waterMl,omitempty"`
}

// IntakeLevel buckets a percentage of a daily target for display
type IntakeLevel string

const (
	IntakeLow      IntakeLevel = "low"
	IntakeModerate IntakeLevel = "moderate"
	IntakeHigh     IntakeLevel = "high"
)

// TargetShare is one nutrient's share of the daily target
type TargetShare struct {
	Percent float64     `json:"percent"`
	Level   IntakeLevel `json:"level"`
}

// TargetBreakdown compares an AdjustedFood against a NutritionTarget
type TargetBreakdown struct {
	Calories TargetShare `json:"calories"`
	Protein  TargetShare `json:"protein"`
	Carbs    TargetShare `json:"carbs"`
	Fats     TargetShare `json:"fats"`
}

// FoodDetail is the food-detail view: scaled values plus an optional breakdown
type FoodDetail struct {
	Food      AdjustedFood     `json:"food"`
	Breakdown *TargetBreakdown `json:"breakdown,omitempty"`
}
