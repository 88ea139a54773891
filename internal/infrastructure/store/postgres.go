package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nutritrack/backend/internal/domain"
)

// userProfileRecord maps the user_profiles table
type userProfileRecord struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName            string
	OnboardingCompleted bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (userProfileRecord) TableName() string { return "user_profiles" }

// nutritionProfileRecord maps the nutrition_profiles table, one row per user
type nutritionProfileRecord struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Age           int       `gorm:"not null"`
	Weight        float64   `gorm:"not null"`
	Height        float64   `gorm:"not null"`
	ActivityLevel string    `gorm:"size:32;not null"`
	Goal          string    `gorm:"size:32;not null"`
	DailyCalories int
	DailyProtein  int
	DailyCarbs    int
	DailyFats     int
	DailyWater    float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (nutritionProfileRecord) TableName() string { return "nutrition_profiles" }

// workoutRecord maps the workouts table
type workoutRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_workouts_user_completed"`
	CompletedAt time.Time `gorm:"not null;index:idx_workouts_user_completed"`
	CreatedAt   time.Time
}

func (workoutRecord) TableName() string { return "workouts" }

func toNutritionRecord(p *domain.NutritionProfile) nutritionProfileRecord {
	return nutritionProfileRecord{
		UserID:        p.UserID,
		Age:           p.Body.AgeYears,
		Weight:        p.Body.WeightKg,
		Height:        p.Body.HeightCm,
		ActivityLevel: string(p.Body.ActivityLevel),
		Goal:          string(p.Body.Goal),
		DailyCalories: p.Target.DailyCalories,
		DailyProtein:  p.Target.DailyProtein,
		DailyCarbs:    p.Target.DailyCarbs,
		DailyFats:     p.Target.DailyFats,
		DailyWater:    p.Target.DailyWaterLiters,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r nutritionProfileRecord) toDomain() *domain.NutritionProfile {
	return &domain.NutritionProfile{
		UserID: r.UserID,
		Body: domain.BodyProfile{
			AgeYears:      r.Age,
			WeightKg:      r.Weight,
			HeightCm:      r.Height,
			ActivityLevel: domain.ActivityLevel(r.ActivityLevel),
			Goal:          domain.Goal(r.Goal),
		},
		Target: domain.NutritionTarget{
			DailyCalories:    r.DailyCalories,
			DailyProtein:     r.DailyProtein,
			DailyCarbs:       r.DailyCarbs,
			DailyFats:        r.DailyFats,
			DailyWaterLiters: r.DailyWater,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// PostgresStore is a profile repository backed by PostgreSQL through gorm
type PostgresStore struct {
	db *gorm.DB
}

// OpenPostgres connects to dsn and migrates the profile tables
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s := NewPostgresStore(db)
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPostgresStore wraps an existing gorm connection
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates or updates the profile and workout tables
func (s *PostgresStore) Migrate() error {
	if err := s.db.AutoMigrate(&userProfileRecord{}, &nutritionProfileRecord{}, &workoutRecord{}); err != nil {
		return fmt.Errorf("%w: migrate: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveNutritionProfile upserts on user_id so a new estimate replaces the old one
func (s *PostgresStore) SaveNutritionProfile(ctx context.Context, profile *domain.NutritionProfile) error {
	if profile == nil || profile.UserID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	record := toNutritionRecord(profile)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age", "weight", "height", "activity_level", "goal",
			"daily_calories", "daily_protein", "daily_carbs", "daily_fats", "daily_water",
			"updated_at",
		}),
	}).Create(&record).Error

	return wrapStoreError(err)
}

// GetNutritionProfile retrieves the nutrition profile of a user
func (s *PostgresStore) GetNutritionProfile(ctx context.Context, userID uuid.UUID) (*domain.NutritionProfile, error) {
	var record nutritionProfileRecord
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return record.toDomain(), nil
}

// SaveUserProfile upserts the user profile on its id
func (s *PostgresStore) SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error {
	if profile == nil || profile.ID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	record := userProfileRecord{
		ID:                  profile.ID,
		FullName:            profile.FullName,
		OnboardingCompleted: profile.OnboardingCompleted,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "onboarding_completed", "updated_at"}),
	}).Create(&record).Error

	return wrapStoreError(err)
}

// GetUserProfile retrieves the user profile
func (s *PostgresStore) GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	var record userProfileRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", userID).Error; err != nil {
		return nil, wrapStoreError(err)
	}
	return &domain.UserProfile{
		ID:                  record.ID,
		FullName:            record.FullName,
		OnboardingCompleted: record.OnboardingCompleted,
	}, nil
}

// MarkOnboardingCompleted sets the flag, inserting the user row when missing
func (s *PostgresStore) MarkOnboardingCompleted(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	record := userProfileRecord{ID: userID, OnboardingCompleted: true}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"onboarding_completed", "updated_at"}),
	}).Create(&record).Error

	return wrapStoreError(err)
}

// RecordWorkout inserts a completed workout
func (s *PostgresStore) RecordWorkout(ctx context.Context, workout *domain.Workout) error {
	if workout == nil || workout.UserID == uuid.Nil {
		return domain.ErrInvalidRequest
	}

	record := workoutRecord{
		ID:          workout.ID,
		UserID:      workout.UserID,
		CompletedAt: workout.CompletedAt,
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return wrapStoreError(s.db.WithContext(ctx).Create(&record).Error)
}

// CountWorkoutsSince counts the user's workouts completed at or after since
func (s *PostgresStore) CountWorkoutsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&workoutRecord{}).
		Where("user_id = ? AND completed_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return int(count), nil
}

// wrapStoreError maps gorm errors onto domain errors
func wrapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrProfileNotFound
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
}
