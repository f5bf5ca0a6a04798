package services

import (
	"errors"
	"fmt"

	"github.com/nst-sdc/Diet-Planner/models"
	"github.com/nst-sdc/Diet-Planner/utils"

	"gorm.io/gorm"
)

type userStore interface {
	CreateUser(u *models.User) error
	UserByEmail(email string) (*models.User, error)
}

type AuthService struct {
	users userStore
}

func NewAuthService(users userStore) *AuthService {
	return &AuthService{users: users}
}

// Signup creates an account and returns the user with a signed token.
func (s *AuthService) Signup(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password needed", ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	_, err := s.users.UserByEmail(email)
	if err == nil {
		return nil, "", fmt.Errorf("%w: user already exists", ErrInvalidInput)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: user lookup: %v", ErrStorage, err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("%w: hash password: %v", ErrStorage, err)
	}

	user := &models.User{Email: email, Password: hashed}
	if err := s.users.CreateUser(user); err != nil {
		return nil, "", fmt.Errorf("%w: create user: %v", ErrStorage, err)
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: sign token: %v", ErrStorage, err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password needed", ErrInvalidInput)
	}

	user, err := s.users.UserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrInvalidInput)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: user lookup: %v", ErrStorage, err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrInvalidInput)
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: sign token: %v", ErrStorage, err)
	}
	return user, token, nil
}
