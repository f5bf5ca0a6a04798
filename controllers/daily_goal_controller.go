package controllers

import (
	"net/http"
	"time"

	"github.com/nst-sdc/Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	svc *services.DailyGoalService
}

func NewGoalController(svc *services.DailyGoalService) *GoalController {
	return &GoalController{svc: svc}
}

// GET /api/goals
func (ctl *GoalController) Get(c *gin.Context) {
	goal, err := ctl.svc.Get(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": goal, "success": true})
}

type saveGoalsRequest struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// POST /api/goals creates or updates the goal; omitted fields fall back to
// the stock 2000/100/250/67 targets.
func (ctl *GoalController) Save(c *gin.Context) {
	var req saveGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.svc.Upsert(c.GetUint("userID"),
		orDefault(req.Calories, 2000),
		orDefault(req.Protein, 100),
		orDefault(req.Carbs, 250),
		orDefault(req.Fat, 67),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": goal, "success": true, "message": "Goals saved!"})
}

// DELETE /api/goals
func (ctl *GoalController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Goals deleted!"})
}

// GET /api/goals/progress?date=2025-01-31 (defaults to today)
func (ctl *GoalController) Progress(c *gin.Context) {
	date := time.Now().Truncate(24 * time.Hour)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = parsed
	}

	goal, progress, err := ctl.svc.Progress(c.GetUint("userID"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    gin.H{"goal": goal, "progress": progress},
		"success": true,
	})
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
