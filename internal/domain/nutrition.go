package domain

// ActivityLevel describes how physically active a person is day to day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists every activity level in display order.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// Valid reports whether a is one of the known activity levels.
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// Label returns the display label shown in the mobile client.
func (a ActivityLevel) Label() string {
	switch a {
	case ActivitySedentary:
		return "Sédentaire"
	case ActivityLight:
		return "Léger"
	case ActivityModerate:
		return "Modéré"
	case ActivityActive:
		return "Actif"
	case ActivityVeryActive:
		return "Très Actif"
	}
	return string(a)
}

// Goal is the body composition objective a user is working towards.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalMaintain   Goal = "maintain"
	GoalGainMuscle Goal = "gain_muscle"
	GoalGainWeight Goal = "gain_weight"
)

// Goals lists every goal in display order.
var Goals = []Goal{GoalLoseWeight, GoalMaintain, GoalGainMuscle, GoalGainWeight}

// Valid reports whether g is one of the known goals.
func (g Goal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalMaintain, GoalGainMuscle, GoalGainWeight:
		return true
	}
	return false
}

// Label returns the display label shown in the mobile client.
func (g Goal) Label() string {
	switch g {
	case GoalLoseWeight:
		return "Perdre du poids"
	case GoalMaintain:
		return "Maintenir"
	case GoalGainMuscle:
		return "Gagner du muscle"
	case GoalGainWeight:
		return "Prendre du poids"
	}
	return string(g)
}

// BodyProfile holds the inputs collected by the nutrition form
type BodyProfile struct {
	AgeYears      int           `json:"age" binding:"required"`
	WeightKg      float64       `json:"weight" binding:"required"`
	HeightCm      float64       `json:"height" binding:"required"`
	ActivityLevel ActivityLevel `json:"activityLevel" binding:"required"`
	Goal          Goal          `json:"goal" binding:"required"`
}

// NutritionTarget is the daily intake derived from a BodyProfile
type NutritionTarget struct {
	DailyCalories    int     `json:"dailyCalories"`
	DailyProtein     int     `json:"dailyProtein"` // grams
	DailyCarbs       int     `json:"dailyCarbs"`   // grams
	DailyFats        int     `json:"dailyFats"`    // grams
	DailyWaterLiters float64 `json:"dailyWater"`   // liters, 2 decimals
}
