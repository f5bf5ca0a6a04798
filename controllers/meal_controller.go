package controllers

import (
	"net/http"
	"time"

	"github.com/nst-sdc/Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{svc: svc}
}

type mealRequest struct {
	Name        string   `json:"name" binding:"required"`
	Calories    *float64 `json:"calories" binding:"required"`
	Protein     *float64 `json:"protein" binding:"required"`
	Carbs       *float64 `json:"carbs" binding:"required"`
	Fat         *float64 `json:"fat" binding:"required"`
	PlannedDate string   `json:"planned_date"`
}

func (r *mealRequest) toInput() (services.MealInput, error) {
	var plannedDate *time.Time
	if r.PlannedDate != "" {
		parsed, err := time.Parse("2006-01-02", r.PlannedDate)
		if err != nil {
			return services.MealInput{}, err
		}
		plannedDate = &parsed
	}
	return services.MealInput{
		Name:        r.Name,
		Calories:    *r.Calories,
		Protein:     *r.Protein,
		Carbs:       *r.Carbs,
		Fat:         *r.Fat,
		PlannedDate: plannedDate,
	}, nil
}

// GET /api/meals
func (ctl *MealController) List(c *gin.Context) {
	meals, err := ctl.svc.List(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": meals, "success": true})
}

// POST /api/meals
func (ctl *MealController) Create(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid planned date"})
		return
	}
	meal, err := ctl.svc.Create(c.GetUint("userID"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": meal, "success": true, "message": "Meal created!"})
}

// PUT /api/meals/:id
func (ctl *MealController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid planned date"})
		return
	}
	meal, err := ctl.svc.Update(id, c.GetUint("userID"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": meal, "success": true, "message": "Meal updated!"})
}

// DELETE /api/meals/:id
func (ctl *MealController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.svc.Delete(id, c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal deleted!"})
}
