package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nst-sdc/Diet-Planner/models"

	"gorm.io/gorm"
)

type mealStore interface {
	MealsByUser(userID uint) ([]models.Meal, error)
	MealByID(id, userID uint) (*models.Meal, error)
	CreateMeal(m *models.Meal) error
	SaveMeal(m *models.Meal) error
	DeleteMeal(id, userID uint) error
}

// MealService manages the reusable meal library.
type MealService struct {
	meals mealStore
}

func NewMealService(meals mealStore) *MealService {
	return &MealService{meals: meals}
}

type MealInput struct {
	Name        string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	PlannedDate *time.Time
}

func (s *MealService) List(userID uint) ([]models.Meal, error) {
	meals, err := s.meals.MealsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list meals: %v", ErrStorage, err)
	}
	return meals, nil
}

func (s *MealService) Create(userID uint, in MealInput) (*models.Meal, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	meal := &models.Meal{
		UserID:      userID,
		Name:        in.Name,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		PlannedDate: in.PlannedDate,
	}
	if err := s.meals.CreateMeal(meal); err != nil {
		return nil, fmt.Errorf("%w: create meal: %v", ErrStorage, err)
	}
	return meal, nil
}

func (s *MealService) Update(mealID, userID uint, in MealInput) (*models.Meal, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	meal, err := s.meals.MealByID(mealID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: meal not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get meal: %v", ErrStorage, err)
	}

	meal.Name = in.Name
	meal.Calories = in.Calories
	meal.Protein = in.Protein
	meal.Carbs = in.Carbs
	meal.Fat = in.Fat
	meal.PlannedDate = in.PlannedDate
	if err := s.meals.SaveMeal(meal); err != nil {
		return nil, fmt.Errorf("%w: save meal: %v", ErrStorage, err)
	}
	return meal, nil
}

func (s *MealService) Delete(mealID, userID uint) error {
	err := s.meals.DeleteMeal(mealID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: meal not found", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: delete meal: %v", ErrStorage, err)
	}
	return nil
}
