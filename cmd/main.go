package main

import (
	"log"
	"os"

	"github.com/nst-sdc/Diet-Planner/config"
	"github.com/nst-sdc/Diet-Planner/controllers"
	"github.com/nst-sdc/Diet-Planner/middlewares"
	"github.com/nst-sdc/Diet-Planner/routes"
	"github.com/nst-sdc/Diet-Planner/services"
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	store := services.NewStore(db)
	hub := services.NewRealtimeHub()

	usda := services.NewUSDAService(os.Getenv("USDA_API_KEY"))
	off := services.NewOpenFoodFactsService()

	nutritionSvc := services.NewNutritionService(store, usda, off)
	loggedMealSvc := services.NewLoggedMealService(store, store, hub)
	mealSvc := services.NewMealService(store)
	plannedMealSvc := services.NewPlannedMealService(store)
	goalSvc := services.NewDailyGoalService(store, store, hub)
	authSvc := services.NewAuthService(store)

	r := routes.SetupRouter(routes.Controllers{
		Auth:         controllers.NewAuthController(authSvc),
		Nutrition:    controllers.NewNutritionController(nutritionSvc),
		LoggedMeals:  controllers.NewLoggedMealController(loggedMealSvc),
		Meals:        controllers.NewMealController(mealSvc),
		PlannedMeals: controllers.NewPlannedMealController(plannedMealSvc),
		Goals:        controllers.NewGoalController(goalSvc),
		Realtime:     controllers.NewRealtimeController(hub),
	}, middlewares.AuthMiddleware(store))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
