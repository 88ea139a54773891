package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultFirstName is shown when a user has not set a name yet
const DefaultFirstName = "Athlète"

// UserProfile is the account-level profile of a user
type UserProfile struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"fullName"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
}

// FirstName returns the first word of the full name, or DefaultFirstName.
func (p *UserProfile) FirstName() string {
	if p == nil {
		return DefaultFirstName
	}
	fields := strings.Fields(p.FullName)
	if len(fields) == 0 {
		return DefaultFirstName
	}
	return fields[0]
}

// NutritionProfile is a stored BodyProfile and the target estimated from it.
// A new estimate replaces the previous one for the same user.
type NutritionProfile struct {
	UserID    uuid.UUID       `json:"userId"`
	Body      BodyProfile     `json:"body"`
	Target    NutritionTarget `json:"target"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
