package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutWindow is the look-back period of the home-screen workout count
const WorkoutWindow = 7 * 24 * time.Hour

// Workout is one completed training session
type Workout struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	CompletedAt time.Time `json:"completedAt"`
}
