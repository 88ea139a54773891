package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutritrack/backend/internal/domain"
	"github.com/nutritrack/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	profiles *usecase.ProfileService
	catalog  []domain.FoodRecord
	version  string
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(profiles *usecase.ProfileService, catalog []domain.FoodRecord, version string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		profiles: profiles,
		catalog:  catalog,
		version:  version,
		logger:   logger,
	}
}

// FoodDetailRequest is the body of POST /foods/detail
type FoodDetailRequest struct {
	Food    domain.FoodRecord `json:"food"`
	Portion string            `json:"portion"`
}

// UpdateProfileRequest is the body of PUT /profile
type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required"`
}

// RecordWorkoutRequest is the optional body of POST /workouts.
// A missing completedAt means the workout was completed now.
type RecordWorkoutRequest struct {
	CompletedAt *time.Time `json:"completedAt"`
}

// labelledBody adds display labels to a stored body profile
type labelledBody struct {
	domain.BodyProfile
	ActivityLabel string `json:"activityLabel"`
	GoalLabel     string `json:"goalLabel"`
}

// nutritionProfileResponse is the JSON shape of GET /profile/nutrition
type nutritionProfileResponse struct {
	UserID    uuid.UUID              `json:"userId"`
	Body      labelledBody           `json:"body"`
	Target    domain.NutritionTarget `json:"target"`
	CreatedAt string                 `json:"createdAt"`
	UpdatedAt string                 `json:"updatedAt"`
}

func toNutritionProfileResponse(profile *domain.NutritionProfile) nutritionProfileResponse {
	return nutritionProfileResponse{
		UserID: profile.UserID,
		Body: labelledBody{
			BodyProfile:   profile.Body,
			ActivityLabel: profile.Body.ActivityLevel.Label(),
			GoalLabel:     profile.Body.Goal.Label(),
		},
		Target:    profile.Target,
		CreatedAt: profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt: profile.UpdatedAt.Format(time.RFC3339),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutritrack-backend",
		"version": h.version,
		"foods":   len(h.catalog),
	})
}

// SearchFoods filters the catalog by the q query parameter
func (h *Handler) SearchFoods(c *gin.Context) {
	foods := usecase.SearchCatalog(h.catalog, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"foods": foods,
		"count": len(foods),
	})
}

// FoodDetail scales a food to the requested portion
func (h *Handler) FoodDetail(c *gin.Context) {
	var req FoodDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	var userID *uuid.UUID
	if id, ok := userIDFromContext(c); ok {
		userID = &id
	}

	detail, err := h.profiles.FoodDetail(c.Request.Context(), userID, req.Food, req.Portion)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// EstimateNutrition computes a daily target without storing anything
func (h *Handler) EstimateNutrition(c *gin.Context) {
	var body domain.BodyProfile
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := usecase.ValidateBodyProfile(body); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, usecase.Estimate(body))
}

// CreateNutritionProfile estimates and stores the caller's daily target
func (h *Handler) CreateNutritionProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var body domain.BodyProfile
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.profiles.CreateNutritionProfile(c.Request.Context(), userID, body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toNutritionProfileResponse(profile))
}

// GetNutritionProfile returns the caller's stored nutrition profile
func (h *Handler) GetNutritionProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	profile, err := h.profiles.GetNutritionProfile(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNutritionProfileResponse(profile))
}

// GetProfile returns the caller's home-screen summary
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	summary, err := h.profiles.GetUserSummary(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateProfile changes the caller's full name
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.profiles.UpdateFullName(c.Request.Context(), userID, req.FullName)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RecordWorkout stores a completed workout for the authenticated user
func (h *Handler) RecordWorkout(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req RecordWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	var completedAt time.Time
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	workout, err := h.profiles.RecordWorkout(c.Request.Context(), userID, completedAt)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// respondError maps domain errors to HTTP statuses
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidProfile), errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPortion):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrProfileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		_ = c.Error(err)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
