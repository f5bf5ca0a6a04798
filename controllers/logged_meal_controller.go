package controllers

import (
    "net/http"
    "strconv"
    "time"

    "github.com/nst-sdc/Diet-Planner/services"

    "github.com/gin-gonic/gin"
)

type LoggedMealController struct {
    svc *services.LoggedMealService
}

func NewLoggedMealController(svc *services.LoggedMealService) *LoggedMealController {
    return &LoggedMealController{svc: svc}
}

type logMealRequest struct {
    Name         string   `json:"name"`
    Calories     *float64 `json:"calories"`
    Protein      *float64 `json:"protein"`
    Carbs        *float64 `json:"carbs"`
    Fat          *float64 `json:"fat"`
    MealDate     string   `json:"meal_date"`
    Quantity     *float64 `json:"quantity"`
    BaseQuantity *float64 `json:"base_quantity"`
}

// toInput coerces missing nutrient fields to 0; validation of the rest
// happens in the service.
func (r *logMealRequest) toInput() (services.LogMealInput, error) {
    var mealDate time.Time
    if r.MealDate != "" {
        var err error
        mealDate, err = time.Parse("2006-01-02", r.MealDate)
        if err != nil {
            return services.LogMealInput{}, err
        }
    }
    return services.LogMealInput{
        Name:         r.Name,
        Calories:     orZero(r.Calories),
        Protein:      orZero(r.Protein),
        Carbs:        orZero(r.Carbs),
        Fat:          orZero(r.Fat),
        MealDate:     mealDate,
        Quantity:     orZero(r.Quantity),
        BaseQuantity: orZero(r.BaseQuantity),
    }, nil
}

func orZero(v *float64) float64 {
    if v == nil {
        return 0
    }
    return *v
}

// GET /api/logged-meals?date=2025-01-31
func (ctl *LoggedMealController) List(c *gin.Context) {
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

// GET /api/logged-meals/range?start=...&end=...
func (ctl *LoggedMealController) ListRange(c *gin.Context) {
    start, ok := parseDateQuery(c, "start")
    if !ok {
        return
    }
    end, ok := parseDateQuery(c, "end")
    if !ok {
        return
    }
    meals, err := ctl.svc.ListByRange(c.GetUint("userID"), start, end)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"data": meals, "success": true})
}

// POST /api/logged-meals
func (ctl *LoggedMealController) Log(c *gin.Context) {
    var req logMealRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    in, err := req.toInput()
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal date"})
        return
    }
    meal, err := ctl.svc.Log(c.GetUint("userID"), in)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusCreated, gin.H{"data": meal, "success": true, "message": "Meal logged!"})
}

// POST /api/logged-meals/manual
func (ctl *LoggedMealController) LogManual(c *gin.Context) {
    var req logMealRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    in, err := req.toInput()
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal date"})
        return
    }
    meal, err := ctl.svc.LogManual(c.GetUint("userID"), in)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusCreated, gin.H{"data": meal, "success": true, "message": "Custom meal added!"})
}

// PATCH /api/logged-meals/:id/quantity
func (ctl *LoggedMealController) UpdateQuantity(c *gin.Context) {
    id, ok := parseIDParam(c)
    if !ok {
        return
    }

    var body struct {
        Quantity *float64 `json:"quantity"`
    }
    if err := c.ShouldBindJSON(&body); err != nil || body.Quantity == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "valid quantity is required"})
        return
    }

    meal, err := ctl.svc.UpdateQuantity(id, c.GetUint("userID"), *body.Quantity)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"data": meal, "success": true, "message": "Meal quantity updated!"})
}

// DELETE /api/logged-meals/:id
func (ctl *LoggedMealController) Delete(c *gin.Context) {
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

func parseIDParam(c *gin.Context) (uint, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 32)
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
        return 0, false
    }
    return uint(id), true
}

func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
    raw := c.Query(name)
    if raw == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
        return time.Time{}, false
    }
    date, err := time.Parse("2006-01-02", raw)
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
        return time.Time{}, false
    }
    return date, true
}
