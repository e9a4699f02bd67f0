package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/validation"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
	metrics        *metrics.Manager
}

func NewWorkoutHandler(workoutService service.WorkoutService, m *metrics.Manager) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, metrics: m}
}

// --- DTOs ---

type CreateWorkoutRequest struct {
	UserEmail   string   `json:"user_email" binding:"required"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	// Must be present; an empty type is counted as "Unknown" by insights
	Type        *string  `json:"type" binding:"required"`
	DurationMin *float64 `json:"duration_min" binding:"required,gt=0"`
	Intensity   *string  `json:"intensity"`
	Notes       *string  `json:"notes"`
	Calories    *float64 `json:"calories" binding:"omitempty,gte=0"`
	Exercises   []string `json:"exercises"`
}

type ListWorkoutsQuery struct {
	UserEmail string `form:"user_email" binding:"required"`
	Start     string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End       string `form:"end" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
}

type WorkoutResponse struct {
	ID          string   `json:"id"`
	UserEmail   string   `json:"user_email"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	DurationMin float64  `json:"duration_min"`
	Intensity   *string  `json:"intensity"`
	Notes       *string  `json:"notes"`
	Calories    *float64 `json:"calories"`
	Exercises   []string `json:"exercises"`
	CreatedAt   string   `json:"created_at"`
}

func MapWorkoutToResponse(w *domain.WorkoutEntry) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:          w.ID.Hex(),
		UserEmail:   w.UserEmail,
		Date:        domain.FormatDate(w.Date),
		Type:        w.Type,
		DurationMin: w.DurationMin,
		Intensity:   w.Intensity,
		Notes:       w.Notes,
		Calories:    w.Calories,
		Exercises:   w.Exercises,
		CreatedAt:   formatTimestamp(w.CreatedAt),
	}
}

func MapWorkoutsToResponse(workouts []domain.WorkoutEntry) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

// --- Handler Methods ---

// LogWorkout godoc
// @Summary Log a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body CreateWorkoutRequest true "Workout"
// @Success 201 {object} IDResponse
// @Failure 422 {object} gin.H "Validation error"
// @Router /api/workouts [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := validation.BindJSON(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	// Already checked by the datetime constraint
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		respondError(c, err, "Invalid workout date.")
		return
	}

	id, err := h.workoutService.LogWorkout(c.Request.Context(), &domain.WorkoutEntry{
		UserEmail:   req.UserEmail,
		Date:        date,
		Type:        *req.Type,
		DurationMin: *req.DurationMin,
		Intensity:   req.Intensity,
		Notes:       req.Notes,
		Calories:    req.Calories,
		Exercises:   req.Exercises,
	})
	if err != nil {
		respondError(c, err, "Failed to log workout.")
		return
	}

	h.metrics.RecordCreated("workout")
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// ListWorkouts godoc
// @Summary List workouts of a user, newest first
// @Tags Workouts
// @Produce json
// @Param user_email query string true "User email"
// @Param start query string false "Start date inclusive YYYY-MM-DD"
// @Param end query string false "End date inclusive YYYY-MM-DD"
// @Param limit query int false "1-500, default 50"
// @Success 200 {array} WorkoutResponse
// @Router /api/workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	var q ListWorkoutsQuery
	if err := validation.BindQuery(c, &q); err != nil {
		respondError(c, err, "")
		return
	}

	query := repository.WorkoutQuery{UserEmail: q.UserEmail, Limit: q.Limit}
	if q.Start != "" {
		start, err := domain.ParseDate(q.Start)
		if err != nil {
			respondError(c, err, "Invalid start date.")
			return
		}
		query.Start = &start
	}
	if q.End != "" {
		end, err := domain.ParseDate(q.End)
		if err != nil {
			respondError(c, err, "Invalid end date.")
			return
		}
		query.End = &end
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Failed to retrieve workouts.")
		return
	}

	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}
