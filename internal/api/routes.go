package api

import (
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/validation"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Profile  service.ProfileService
	Workout  service.WorkoutService
	BodyComp service.BodyCompService
	Insights service.InsightsService
	Archive  service.ArchiveService
	Status   service.StatusService
}

// SetupRoutes installs the middleware chain and every endpoint on router.
// metricsManager may be nil, which disables request metrics.
func SetupRoutes(router *gin.Engine, services Services, metricsManager *metrics.Manager) {
	validation.Setup()

	router.Use(PanicRecovery(metricsManager), RequestID(), CORS(), RequestLogger())
	if metricsManager != nil {
		router.Use(RequestMetrics(metricsManager))
	}

	statusHandler := NewStatusHandler(services.Status)
	profileHandler := NewProfileHandler(services.Profile, metricsManager)
	workoutHandler := NewWorkoutHandler(services.Workout, metricsManager)
	bodyCompHandler := NewBodyCompHandler(services.BodyComp, metricsManager)
	insightsHandler := NewInsightsHandler(services.Insights, services.Archive, metricsManager)

	router.GET("/", statusHandler.Root)
	router.GET("/test", statusHandler.Status)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/profile", profileHandler.CreateProfile)
		apiGroup.GET("/profile", profileHandler.GetProfile)

		apiGroup.POST("/workouts", workoutHandler.LogWorkout)
		apiGroup.GET("/workouts", workoutHandler.ListWorkouts)

		apiGroup.POST("/bodycomp", bodyCompHandler.RecordMeasurement)
		apiGroup.GET("/bodycomp", bodyCompHandler.ListMeasurements)

		apiGroup.GET("/insights", insightsHandler.GetInsights)
		apiGroup.POST("/insights/archive", insightsHandler.ArchiveInsights)
	}
}
