package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityLevel(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		valid bool
		label string
	}{
		{ActivitySedentary, true, "Sédentaire"},
		{ActivityLight, true, "Léger"},
		{ActivityModerate, true, "Modéré"},
		{ActivityActive, true, "Actif"},
		{ActivityVeryActive, true, "Très Actif"},
		{ActivityLevel("couch"), false, "couch"},
		{ActivityLevel(""), false, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.level.Valid())
			assert.Equal(t, tt.label, tt.level.Label())
		})
	}

	for _, level := range ActivityLevels {
		assert.True(t, level.Valid(), "listed level %q must be valid", level)
	}
}

func TestGoal(t *testing.T) {
	tests := []struct {
		goal  Goal
		valid bool
		label string
	}{
		{GoalLoseWeight, true, "Perdre du poids"},
		{GoalMaintain, true, "Maintenir"},
		{GoalGainMuscle, true, "Gagner du muscle"},
		{GoalGainWeight, true, "Prendre du poids"},
		{Goal("bulk"), false, "bulk"},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.goal.Valid())
			assert.Equal(t, tt.label, tt.goal.Label())
		})
	}

	for _, goal := range Goals {
		assert.True(t, goal.Valid(), "listed goal %q must be valid", goal)
	}
}

func TestUserProfile_FirstName(t *testing.T) {
	tests := []struct {
		name    string
		profile *UserProfile
		want    string
	}{
		{"nil profile", nil, DefaultFirstName},
		{"empty name", &UserProfile{}, DefaultFirstName},
		{"whitespace name", &UserProfile{FullName: "   "}, DefaultFirstName},
		{"single name", &UserProfile{FullName: "Camille"}, "Camille"},
		{"full name", &UserProfile{FullName: "Camille Martin"}, "Camille"},
		{"leading spaces", &UserProfile{FullName: "  Jean Pierre Dupont"}, "Jean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.FirstName())
		})
	}
}
