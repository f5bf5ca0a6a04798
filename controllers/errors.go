package controllers

import (
    "errors"
    "net/http"

    "github.com/nst-sdc/Diet-Planner/services"

    "github.com/gin-gonic/gin"
)

// respondError maps service error kinds onto HTTP statuses. Anything that is
// not a validation or not-found failure is reported as a generic 500 so
// internals never leak to the client.
func respondError(c *gin.Context, err error) {
    switch {
    case errors.Is(err, services.ErrInvalidInput):
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    case errors.Is(err, services.ErrNotFound):
        c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
    default:
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
    }
}
