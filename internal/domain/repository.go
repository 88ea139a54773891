package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for user and nutrition profile persistence
type ProfileRepository interface {
	// SaveNutritionProfile inserts the profile or replaces the one stored for the same user
	SaveNutritionProfile(ctx context.Context, profile *NutritionProfile) error
	GetNutritionProfile(ctx context.Context, userID uuid.UUID) (*NutritionProfile, error)

	SaveUserProfile(ctx context.Context, profile *UserProfile) error
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)

	// MarkOnboardingCompleted flags the user profile, creating it when missing
	MarkOnboardingCompleted(ctx context.Context, userID uuid.UUID) error

	RecordWorkout(ctx context.Context, workout *Workout) error
	// CountWorkoutsSince counts the user's workouts completed at or after since
	CountWorkoutsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}
