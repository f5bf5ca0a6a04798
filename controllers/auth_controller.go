package controllers

import (
	"net/http"

	"github.com/nst-sdc/Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

type credentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/signup
func (ctl *AuthController) Signup(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password needed"})
		return
	}

	user, token, err := ctl.svc.Signup(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    gin.H{"user": user, "token": token},
		"success": true,
		"message": "User created!",
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password needed"})
		return
	}

	user, token, err := ctl.svc.Login(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    gin.H{"user": user, "token": token},
		"success": true,
		"message": "Login successful!",
	})
}
