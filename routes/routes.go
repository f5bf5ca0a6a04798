package routes

import (
	"net/http"

	"github.com/nst-sdc/Diet-Planner/controllers"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth         *controllers.AuthController
	Nutrition    *controllers.NutritionController
	LoggedMeals  *controllers.LoggedMealController
	Meals        *controllers.MealController
	PlannedMeals *controllers.PlannedMealController
	Goals        *controllers.GoalController
	Realtime     *controllers.RealtimeController
}

func SetupRouter(ctl Controllers, auth gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Diet Planner Backend is running!",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", ctl.Auth.Signup)
		authGroup.POST("/login", ctl.Auth.Login)
	}

	nutrition := api.Group("/nutrition")
	nutrition.Use(auth)
	{
		nutrition.GET("/search", ctl.Nutrition.Search)
	}

	logged := api.Group("/logged-meals")
	logged.Use(auth)
	{
		logged.GET("", ctl.LoggedMeals.List)
		logged.GET("/range", ctl.LoggedMeals.ListRange)
		logged.POST("", ctl.LoggedMeals.Log)
		logged.POST("/manual", ctl.LoggedMeals.LogManual)
		logged.PATCH("/:id/quantity", ctl.LoggedMeals.UpdateQuantity)
		logged.DELETE("/:id", ctl.LoggedMeals.Delete)
	}

	meals := api.Group("/meals")
	meals.Use(auth)
	{
		meals.GET("", ctl.Meals.List)
		meals.POST("", ctl.Meals.Create)
		meals.PUT("/:id", ctl.Meals.Update)
		meals.DELETE("/:id", ctl.Meals.Delete)
	}

	planned := api.Group("/planned-meals")
	planned.Use(auth)
	{
		planned.GET("", ctl.PlannedMeals.List)
		planned.POST("", ctl.PlannedMeals.Create)
		planned.PUT("/:id", ctl.PlannedMeals.Update)
		planned.DELETE("/:id", ctl.PlannedMeals.Delete)
	}

	goals := api.Group("/goals")
	goals.Use(auth)
	{
		goals.GET("", ctl.Goals.Get)
		goals.POST("", ctl.Goals.Save)
		goals.DELETE("", ctl.Goals.Delete)
		goals.GET("/progress", ctl.Goals.Progress)
	}

	realtime := api.Group("/realtime")
	realtime.Use(auth)
	{
		realtime.GET("/ws", ctl.Realtime.EventsWS)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found", "path": c.Request.URL.Path})
	})

	return r
}
