package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutritrack/backend/internal/domain"
)

func TestNutritionRecordRoundTrip(t *testing.T) {
	profile := sampleNutritionProfile(uuid.New())

	record := toNutritionRecord(profile)
	assert.Equal(t, "moderate", record.ActivityLevel)
	assert.Equal(t, "maintain", record.Goal)
	assert.Equal(t, 2.94, record.DailyWater)

	assert.Equal(t, profile, record.toDomain())
}

func TestWrapStoreError(t *testing.T) {
	assert.NoError(t, wrapStoreError(nil))
	assert.Equal(t, domain.ErrProfileNotFound, wrapStoreError(gorm.ErrRecordNotFound))
	assert.Equal(t, domain.ErrProfileNotFound, wrapStoreError(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))

	err := wrapStoreError(errors.New("connection refused"))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "user_profiles", userProfileRecord{}.TableName())
	assert.Equal(t, "nutrition_profiles", nutritionProfileRecord{}.TableName())
	assert.Equal(t, "workouts", workoutRecord{}.TableName())
}

// TestPostgresStore runs against a real database when NUTRITRACK_TEST_POSTGRES_DSN is set
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("NUTRITRACK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("NUTRITRACK_TEST_POSTGRES_DSN not set")
	}

	store, err := OpenPostgres(dsn)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	userID := uuid.New()

	_, err = store.GetNutritionProfile(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	first := sampleNutritionProfile(userID)
	require.NoError(t, store.SaveNutritionProfile(ctx, first))

	second := sampleNutritionProfile(userID)
	second.Target.DailyCalories = 1994
	require.NoError(t, store.SaveNutritionProfile(ctx, second))

	got, err := store.GetNutritionProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1994, got.Target.DailyCalories)
	assert.Equal(t, domain.GoalMaintain, got.Body.Goal)

	require.NoError(t, store.SaveUserProfile(ctx, &domain.UserProfile{ID: userID, FullName: "Camille Martin"}))
	require.NoError(t, store.MarkOnboardingCompleted(ctx, userID))

	user, err := store.GetUserProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Camille Martin", user.FullName)
	assert.True(t, user.OnboardingCompleted)

	otherID := uuid.New()
	require.NoError(t, store.MarkOnboardingCompleted(ctx, otherID))
	other, err := store.GetUserProfile(ctx, otherID)
	require.NoError(t, err)
	assert.True(t, other.OnboardingCompleted)

	since := time.Now().UTC().Add(-domain.WorkoutWindow)
	require.NoError(t, store.RecordWorkout(ctx, &domain.Workout{ID: uuid.New(), UserID: userID, CompletedAt: time.Now().UTC()}))
	require.NoError(t, store.RecordWorkout(ctx, &domain.Workout{UserID: userID, CompletedAt: since.Add(-time.Hour)}))
	count, err := store.CountWorkoutsSince(ctx, userID, since)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
