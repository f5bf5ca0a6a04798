package services

import (
    "errors"
    "fmt"
    "time"

    "github.com/nst-sdc/Diet-Planner/models"

    "gorm.io/gorm"
)

type plannedMealStore interface {
    PlannedMealsByDate(userID uint, date time.Time) ([]models.PlannedMeal, error)
    PlannedMealByID(id, userID uint) (*models.PlannedMeal, error)
    CreatePlannedMeal(m *models.PlannedMeal) error
    SavePlannedMeal(m *models.PlannedMeal) error
    DeletePlannedMeal(id, userID uint) error
}

// PlannedMealService manages the per-day meal plan.
type PlannedMealService struct {
    meals plannedMealStore
}

func NewPlannedMealService(meals plannedMealStore) *PlannedMealService {
    return &PlannedMealService{meals: meals}
}

type PlannedMealInput struct {
    Name        string
    PlannedDate time.Time
    MealType    string
    Calories    *float64
    Protein     *float64
    Carbs       *float64
    Fat         *float64
}

func (in *PlannedMealInput) validate() error {
    if in.Name == "" || in.MealType == "" || in.PlannedDate.IsZero() {
        return fmt.Errorf("%w: name, date, and meal type are required", ErrInvalidInput)
    }
    return nil
}

func (s *PlannedMealService) ListByDate(userID uint, date time.Time) ([]models.PlannedMeal, error) {
    meals, err := s.meals.PlannedMealsByDate(userID, date)
    if err != nil {
        return nil, fmt.Errorf("%w: list planned meals: %v", ErrStorage, err)
    }
    return meals, nil
}

func (s *PlannedMealService) Create(userID uint, in PlannedMealInput) (*models.PlannedMeal, error) {
    if err := in.validate(); err != nil {
        return nil, err
    }

    meal := &models.PlannedMeal{
        UserID:      userID,
        Name:        in.Name,
        PlannedDate: in.PlannedDate,
        MealType:    in.MealType,
        Calories:    in.Calories,
        Protein:     in.Protein,
        Carbs:       in.Carbs,
        Fat:         in.Fat,
    }
    if err := s.meals.CreatePlannedMeal(meal); err != nil {
        return nil, fmt.Errorf("%w: create planned meal: %v", ErrStorage, err)
    }
    return meal, nil
}

func (s *PlannedMealService) Update(mealID, userID uint, in PlannedMealInput) (*models.PlannedMeal, error) {
    if err := in.validate(); err != nil {
        return nil, err
    }

    meal, err := s.meals.PlannedMealByID(mealID, userID)
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, fmt.Errorf("%w: meal not found", ErrNotFound)
    }
    if err != nil {
        return nil, fmt.Errorf("%w: get planned meal: %v", ErrStorage, err)
    }

    meal.Name = in.Name
    meal.PlannedDate = in.PlannedDate
    meal.MealType = in.MealType
    meal.Calories = in.Calories
    meal.Protein = in.Protein
    meal.Carbs = in.Carbs
    meal.Fat = in.Fat
    if err := s.meals.SavePlannedMeal(meal); err != nil {
        return nil, fmt.Errorf("%w: save planned meal: %v", ErrStorage, err)
    }
    return meal, nil
}

func (s *PlannedMealService) Delete(mealID, userID uint) error {
    err := s.meals.DeletePlannedMeal(mealID, userID)
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return fmt.Errorf("%w: meal not found", ErrNotFound)
    }
    if err != nil {
        return fmt.Errorf("%w: delete planned meal: %v", ErrStorage, err)
    }
    return nil
}
