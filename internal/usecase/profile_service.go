package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutritrack/backend/internal/domain"
)

// ProfileServiceConfig holds configuration for the profile service
type ProfileServiceConfig struct {
	Logger *zap.Logger
	// Now overrides the clock, mostly for tests
	Now func() time.Time
}

// ProfileService handles nutrition profile creation and the food-detail view
type ProfileService struct {
	repo   domain.ProfileRepository
	logger *zap.Logger
	now    func() time.Time
}

// UserSummary is the home-screen view of a user
type UserSummary struct {
	Profile      domain.UserProfile      `json:"profile"`
	FirstName    string                  `json:"firstName"`
	Target       *domain.NutritionTarget `json:"target,omitempty"`
	WeekWorkouts int                     `json:"weekWorkouts"`
}

// NewProfileService creates a new profile service with dependencies
func NewProfileService(repo domain.ProfileRepository, config ProfileServiceConfig) *ProfileService {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &ProfileService{
		repo:   repo,
		logger: logger,
		now:    now,
	}
}

// CreateNutritionProfile validates the body profile, estimates its target,
// stores the pair (replacing any previous one) and marks onboarding done.
// Flow: validate -> estimate -> save -> mark onboarded
func (s *ProfileService) CreateNutritionProfile(
	ctx context.Context,
	userID uuid.UUID,
	body domain.BodyProfile,
) (*domain.NutritionProfile, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrInvalidRequest
	}
	if err := ValidateBodyProfile(body); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile := &domain.NutritionProfile{
		UserID:    userID,
		Body:      body,
		Target:    Estimate(body),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if existing, err := s.repo.GetNutritionProfile(ctx, userID); err == nil {
		profile.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	if err := s.repo.SaveNutritionProfile(ctx, profile); err != nil {
		s.logger.Error("saving nutrition profile failed", zap.Stringer("user_id", userID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.MarkOnboardingCompleted(ctx, userID); err != nil {
		s.logger.Error("marking onboarding completed failed", zap.Stringer("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("nutrition profile saved",
		zap.Stringer("user_id", userID),
		zap.Int("daily_calories", profile.Target.DailyCalories),
		zap.String("goal", string(body.Goal)),
	)

	return profile, nil
}

// GetNutritionProfile returns the stored nutrition profile of a user
func (s *ProfileService) GetNutritionProfile(ctx context.Context, userID uuid.UUID) (*domain.NutritionProfile, error) {
	return s.repo.GetNutritionProfile(ctx, userID)
}

// GetUserSummary returns the user profile, their daily target when present
// and the number of workouts completed over the last WorkoutWindow.
// A user without a stored profile gets an empty one rather than an error.
func (s *ProfileService) GetUserSummary(ctx context.Context, userID uuid.UUID) (*UserSummary, error) {
	user, err := s.repo.GetUserProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		user = &domain.UserProfile{ID: userID}
	}

	summary := &UserSummary{
		Profile:   *user,
		FirstName: user.FirstName(),
	}

	target, err := s.dailyTarget(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.Target = target

	weekWorkouts, err := s.repo.CountWorkoutsSince(ctx, userID, s.now().UTC().Add(-domain.WorkoutWindow))
	if err != nil {
		return nil, err
	}
	summary.WeekWorkouts = weekWorkouts

	return summary, nil
}

// RecordWorkout stores a completed workout. A zero completedAt means now;
// completion times in the future are rejected.
func (s *ProfileService) RecordWorkout(ctx context.Context, userID uuid.UUID, completedAt time.Time) (*domain.Workout, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrInvalidRequest
	}

	now := s.now().UTC()
	if completedAt.IsZero() {
		completedAt = now
	}
	if completedAt.After(now) {
		return nil, fmt.Errorf("%w: workout completion time is in the future", domain.ErrInvalidRequest)
	}

	workout := &domain.Workout{
		ID:          uuid.New(),
		UserID:      userID,
		CompletedAt: completedAt.UTC(),
	}
	if err := s.repo.RecordWorkout(ctx, workout); err != nil {
		s.logger.Error("recording workout failed", zap.Stringer("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("workout recorded", zap.Stringer("user_id", userID), zap.Time("completed_at", workout.CompletedAt))
	return workout, nil
}

// UpdateFullName sets the display name of a user, keeping the onboarding flag
func (s *ProfileService) UpdateFullName(ctx context.Context, userID uuid.UUID, fullName string) (*domain.UserProfile, error) {
	fullName = strings.TrimSpace(fullName)
	if userID == uuid.Nil || fullName == "" {
		return nil, domain.ErrInvalidRequest
	}

	user, err := s.repo.GetUserProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		user = &domain.UserProfile{ID: userID}
	}
	user.FullName = fullName

	if err := s.repo.SaveUserProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FoodDetail scales food to the portion typed by the user and, when userID
// is set and the user has a stored target, adds the share of that target.
func (s *ProfileService) FoodDetail(
	ctx context.Context,
	userID *uuid.UUID,
	food domain.FoodRecord,
	portionText string,
) (*domain.FoodDetail, error) {
	if err := food.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	adjusted, err := Scale(food, ParsePortionInput(portionText))
	if err != nil {
		return nil, err
	}

	detail := &domain.FoodDetail{Food: adjusted}
	if userID == nil {
		return detail, nil
	}

	target, err := s.dailyTarget(ctx, *userID)
	if err != nil {
		// The scaled values are still useful without percentages
		s.logger.Warn("daily target unavailable for food detail", zap.Stringer("user_id", *userID), zap.Error(err))
		return detail, nil
	}
	detail.Breakdown = Breakdown(adjusted, target)

	return detail, nil
}

// dailyTarget returns nil without error when the user has no stored profile
func (s *ProfileService) dailyTarget(ctx context.Context, userID uuid.UUID) (*domain.NutritionTarget, error) {
	profile, err := s.repo.GetNutritionProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	target := profile.Target
	return &target, nil
}
