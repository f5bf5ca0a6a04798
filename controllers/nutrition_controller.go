package controllers

import (
    "net/http"

    "github.com/nst-sdc/Diet-Planner/services"

    "github.com/gin-gonic/gin"
)

type NutritionController struct {
    svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
    return &NutritionController{svc: svc}
}

// GET /api/nutrition/search?query=apple
func (ctl *NutritionController) Search(c *gin.Context) {
    items, err := ctl.svc.Search(c.Request.Context(), c.GetUint("userID"), c.Query("query"))
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"data": items, "success": true, "total": len(items)})
}
