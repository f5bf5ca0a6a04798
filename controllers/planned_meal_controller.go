package controllers

import (
    "net/http"
    "time"

    "github.com/nst-sdc/Diet-Planner/services"

    "github.com/gin-gonic/gin"
)

type PlannedMealController struct {
    svc *services.PlannedMealService
}

func NewPlannedMealController(svc *services.PlannedMealService) *PlannedMealController {
    return &PlannedMealController{svc: svc}
}

type plannedMealRequest struct {
    Name        string   `json:"name" binding:"required"`
    PlannedDate string   `json:"planned_date" binding:"required"`
    MealType    string   `json:"meal_type" binding:"required"`
    Calories    *float64 `json:"calories"`
    Protein     *float64 `json:"protein"`
    Carbs       *float64 `json:"carbs"`
    Fat         *float64 `json:"fat"`
}

func (r *plannedMealRequest) toInput() (services.PlannedMealInput, error) {
    date, err := time.Parse("2006-01-02", r.PlannedDate)
    if err != nil {
        return services.PlannedMealInput{}, err
    }
    return services.PlannedMealInput{
        Name:        r.Name,
        PlannedDate: date,
        MealType:    r.MealType,
        Calories:    r.Calories,
        Protein:     r.Protein,
        Carbs:       r.Carbs,
        Fat:         r.Fat,
    }, nil
}

// GET /api/planned-meals?date=2025-01-31
func (ctl *PlannedMealController) List(c *gin.Context) {
    date, ok := parseDateQuery(c, "date")
    if !ok {
        return
    }
    meals, err := ctl.svc.ListByDate(c.GetUint("userID"), date)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"data": meals, "success": true})
}

// POST /api/planned-meals
func (ctl *PlannedMealController) Create(c *gin.Context) {
    var req plannedMealRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Name, date, and meal type are required"})
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
    c.JSON(http.StatusCreated, gin.H{"data": meal, "success": true, "message": "Meal planned!"})
}

// PUT /api/planned-meals/:id
func (ctl *PlannedMealController) Update(c *gin.Context) {
    id, ok := parseIDParam(c)
    if !ok {
        return
    }
    var req plannedMealRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Name, date, and meal type are required"})
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

// DELETE /api/planned-meals/:id
func (ctl *PlannedMealController) Delete(c *gin.Context) {
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
