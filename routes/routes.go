package routes

import (
	"github.com/benasja/workout-sub000/controllers"
	"github.com/benasja/workout-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	perf *controllers.PerformanceController,
	analytics *controllers.AnalyticsController,
	fuel *controllers.FuelController,
	realtime *controllers.RealtimeController,
	devices *controllers.DeviceController,
) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.DELETE("/account", controllers.DeleteAccount)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	biometrics := r.Group("/biometrics")
	biometrics.Use(middlewares.AuthMiddleware())
	{
		biometrics.POST("/samples", perf.UpsertSample)
	}

	performance := r.Group("/performance")
	performance.Use(middlewares.AuthMiddleware())
	{
		performance.GET("", perf.GetPerformance)
		performance.GET("/history", perf.GetHistory)
	}

	journal := r.Group("/journal")
	journal.Use(middlewares.AuthMiddleware())
	{
		journal.POST("", controllers.UpsertJournal)
		journal.GET("", controllers.ListJournal)
		journal.GET("/:date", controllers.GetJournal)
		journal.DELETE("/:date", controllers.DeleteJournal)
	}

	analyticsGroup := r.Group("/analytics")
	analyticsGroup.Use(middlewares.AuthMiddleware())
	{
		analyticsGroup.GET("/weekly", analytics.GetWeeklyOverview)
		analyticsGroup.GET("/correlations", analytics.GetCorrelations)
		analyticsGroup.GET("/correlations/:factor", analytics.GetFactorComparison)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/goals", controllers.GetNutritionGoals)
		nutrition.POST("/goals/recalculate", controllers.RecomputeNutritionGoals)
		nutrition.PUT("/goals", controllers.OverrideNutritionGoals)
	}

	weight := r.Group("/weight")
	weight.Use(middlewares.AuthMiddleware())
	{
		weight.POST("", controllers.LogWeight)
		weight.GET("", controllers.ListWeight)
		weight.DELETE("/:id", controllers.DeleteWeight)
	}

	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.POST("", controllers.CreateWorkout)
		workouts.GET("", controllers.ListWorkouts)
		workouts.DELETE("/:id", controllers.DeleteWorkout)
		workouts.GET("/records", controllers.GetPersonalRecords)
	}

	fuelGroup := r.Group("/fuel")
	fuelGroup.Use(middlewares.AuthMiddleware())
	{
		fuelGroup.POST("", fuel.LogFuel)
		fuelGroup.GET("", fuel.ListFuel)
		fuelGroup.GET("/totals", fuel.GetFuelTotals)
		fuelGroup.DELETE("/:id", fuel.DeleteFuel)
	}

	activity := r.Group("/activity")
	activity.Use(middlewares.AuthMiddleware())
	{
		activity.POST("", controllers.UpdateDailyActivity)
		activity.GET("", controllers.GetDailyActivity)
	}

	deviceGroup := r.Group("/devices")
	deviceGroup.Use(middlewares.AuthMiddleware())
	{
		deviceGroup.POST("", devices.Register)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	r.GET("/ws", middlewares.AuthMiddleware(), realtime.EventsWS)

	return r
}
