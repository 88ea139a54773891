package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory profile repository.
// Values are copied on the way in and out so callers never share state.
type MemoryStore struct {
	nutrition map[uuid.UUID]domain.NutritionProfile
	users     map[uuid.UUID]domain.UserProfile
	workouts  map[uuid.UUID][]domain.Workout
	mutex     sync.RWMutex
}

// NewMemoryStore creates a new in-memory profile store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nutrition: make(map[uuid.UUID]domain.NutritionProfile),
		users:     make(map[uuid.UUID]domain.UserProfile),
		workouts:  make(map[uuid.UUID][]domain.Workout),
	}
}

// SaveNutritionProfile stores the profile, replacing any previous one for the user
func (s *MemoryStore) SaveNutritionProfile(ctx context.Context, profile *domain.NutritionProfile) error {
	if profile == nil || profile.UserID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nutrition[profile.UserID] = *profile
	return nil
}

// GetNutritionProfile retrieves the nutrition profile of a user
func (s *MemoryStore) GetNutritionProfile(ctx context.Context, userID uuid.UUID) (*domain.NutritionProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	profile, exists := s.nutrition[userID]
	if !exists {
		return nil, domain.ErrProfileNotFound
	}
	return &profile, nil
}

// SaveUserProfile stores the user profile, replacing any previous one
func (s *MemoryStore) SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error {
	if profile == nil || profile.ID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.users[profile.ID] = *profile
	return nil
}

// GetUserProfile retrieves the user profile
func (s *MemoryStore) GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	profile, exists := s.users[userID]
	if !exists {
		return nil, domain.ErrProfileNotFound
	}
	return &profile, nil
}

// MarkOnboardingCompleted flags the user profile, creating it when missing
func (s *MemoryStore) MarkOnboardingCompleted(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	profile, exists := s.users[userID]
	if !exists {
		profile = domain.UserProfile{ID: userID}
	}
	profile.OnboardingCompleted = true
	s.users[userID] = profile
	return nil
}

// RecordWorkout appends a completed workout to the user's history
func (s *MemoryStore) RecordWorkout(ctx context.Context, workout *domain.Workout) error {
	if workout == nil || workout.UserID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.workouts[workout.UserID] = append(s.workouts[workout.UserID], *workout)
	return nil
}

// CountWorkoutsSince counts the user's workouts completed at or after since
func (s *MemoryStore) CountWorkoutsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	for _, workout := range s.workouts[userID] {
		if !workout.CompletedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// Size returns the number of stored nutrition profiles (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.nutrition)
}

// Clear removes all stored profiles
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.nutrition = make(map[uuid.UUID]domain.NutritionProfile)
	s.users = make(map[uuid.UUID]domain.UserProfile)
	s.workouts = make(map[uuid.UUID][]domain.Workout)
}

// Close is a no-op; it lets MemoryStore stand in wherever a closable store is expected
func (s *MemoryStore) Close() error {
	return nil
}
