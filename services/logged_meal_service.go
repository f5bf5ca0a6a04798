package services

import (
    "errors"
    "fmt"
    "math"
    "time"

    "github.com/nst-sdc/Diet-Planner/models"
    "github.com/nst-sdc/Diet-Planner/utils"

    "gorm.io/gorm"
)

type loggedMealStore interface {
    CreateLoggedMeal(m *models.LoggedMeal) error
    LoggedMealsByDate(userID uint, date time.Time) ([]models.LoggedMeal, error)
    LoggedMealsByRange(userID uint, start, end time.Time) ([]models.LoggedMeal, error)
    DeleteLoggedMeal(id, userID uint) error
    UpdateScaledLoggedMeal(id, userID uint, apply func(*models.LoggedMeal)) (*models.LoggedMeal, error)
}

type customFoodCache interface {
    CustomFoodByExactName(userID uint, name string) (*models.CustomFood, error)
    CreateCustomFood(f *models.CustomFood) error
}

type notifier interface {
    Broadcast(userID uint, payload interface{})
}

// LoggedMealService owns the consumed-meal diary: logging, manual entry
// with the lazy custom-food cache, quantity rescaling, listing and removal.
type LoggedMealService struct {
    meals loggedMealStore
    foods customFoodCache
    hub   notifier // optional
}

func NewLoggedMealService(meals loggedMealStore, foods customFoodCache, hub notifier) *LoggedMealService {
    return &LoggedMealService{meals: meals, foods: foods, hub: hub}
}

type LogMealInput struct {
    Name         string
    Calories     float64
    Protein      float64
    Carbs        float64
    Fat          float64
    MealDate     time.Time
    Quantity     float64 // grams; 0 means unspecified
    BaseQuantity float64 // grams; 0 means unspecified
}

func (in *LogMealInput) validate() error {
    if in.Name == "" {
        return fmt.Errorf("%w: name is required", ErrInvalidInput)
    }
    if in.MealDate.IsZero() {
        return fmt.Errorf("%w: meal date is required", ErrInvalidInput)
    }
    for _, v := range []float64{in.Calories, in.Protein, in.Carbs, in.Fat} {
        if math.IsNaN(v) || math.IsInf(v, 0) {
            return fmt.Errorf("%w: nutrient values must be numbers", ErrInvalidInput)
        }
    }
    return nil
}

// Log records a meal picked from search results. BaseQuantity defaults to
// the quantity supplied at creation time so the rescaling invariant holds
// from the first write.
func (s *LoggedMealService) Log(userID uint, in LogMealInput) (*models.LoggedMeal, error) {
    if err := in.validate(); err != nil {
        return nil, err
    }

    quantity := in.Quantity
    if quantity == 0 {
        quantity = 100
    }
    baseQuantity := in.BaseQuantity
    if baseQuantity == 0 {
        baseQuantity = quantity
    }

    meal := &models.LoggedMeal{
        UserID:       userID,
        Name:         in.Name,
        Calories:     in.Calories,
        Protein:      in.Protein,
        Carbs:        in.Carbs,
        Fat:          in.Fat,
        Quantity:     quantity,
        BaseQuantity: baseQuantity,
        MealDate:     in.MealDate,
        LoggedAt:     time.Now(),
    }
    if err := s.meals.CreateLoggedMeal(meal); err != nil {
        return nil, fmt.Errorf("%w: create logged meal: %v", ErrStorage, err)
    }

    s.broadcast(userID, "meal_logged", meal)
    return meal, nil
}

// LogManual records a hand-entered food. The first time a user enters a
// given name the values are cached as a CustomFood, which then shows up as
// a private source in search. Manual entries are always recorded against a
// 100g base.
func (s *LoggedMealService) LogManual(userID uint, in LogMealInput) (*models.LoggedMeal, error) {
    if err := in.validate(); err != nil {
        return nil, err
    }

    _, err := s.foods.CustomFoodByExactName(userID, in.Name)
    if errors.Is(err, gorm.ErrRecordNotFound) {
        food := &models.CustomFood{
            UserID:   userID,
            Name:     in.Name,
            Calories: in.Calories,
            Protein:  in.Protein,
            Carbs:    in.Carbs,
            Fat:      in.Fat,
        }
        if err := s.foods.CreateCustomFood(food); err != nil {
            return nil, fmt.Errorf("%w: cache custom food: %v", ErrStorage, err)
        }
    } else if err != nil {
        return nil, fmt.Errorf("%w: custom food lookup: %v", ErrStorage, err)
    }

    quantity := in.Quantity
    if quantity == 0 {
        quantity = 100
    }

    meal := &models.LoggedMeal{
        UserID:       userID,
        Name:         in.Name,
        Calories:     in.Calories,
        Protein:      in.Protein,
        Carbs:        in.Carbs,
        Fat:          in.Fat,
        Quantity:     quantity,
        BaseQuantity: 100,
        MealDate:     in.MealDate,
        LoggedAt:     time.Now(),
    }
    if err := s.meals.CreateLoggedMeal(meal); err != nil {
        return nil, fmt.Errorf("%w: create logged meal: %v", ErrStorage, err)
    }

    s.broadcast(userID, "meal_logged", meal)
    return meal, nil
}

// UpdateQuantity rescales the stored nutrient snapshot to a new serving
// size. Scaling is proportional from the currently stored values, so
// per-gram nutrient density is preserved; BaseQuantity never changes.
func (s *LoggedMealService) UpdateQuantity(mealID, userID uint, newQuantity float64) (*models.LoggedMeal, error) {
    if math.IsNaN(newQuantity) || math.IsInf(newQuantity, 0) || newQuantity <= 0 {
        return nil, fmt.Errorf("%w: valid quantity is required", ErrInvalidInput)
    }

    meal, err := s.meals.UpdateScaledLoggedMeal(mealID, userID, func(m *models.LoggedMeal) {
        ratio := newQuantity / m.Quantity
        m.Calories = utils.RoundCalories(m.Calories * ratio)
        m.Protein = utils.RoundMacro(m.Protein * ratio)
        m.Carbs = utils.RoundMacro(m.Carbs * ratio)
        m.Fat = utils.RoundMacro(m.Fat * ratio)
        m.Quantity = newQuantity
    })
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, fmt.Errorf("%w: meal not found", ErrNotFound)
    }
    if err != nil {
        return nil, fmt.Errorf("%w: update meal quantity: %v", ErrStorage, err)
    }

    s.broadcast(userID, "meal_updated", meal)
    return meal, nil
}

func (s *LoggedMealService) ListByDate(userID uint, date time.Time) ([]models.LoggedMeal, error) {
    meals, err := s.meals.LoggedMealsByDate(userID, date)
    if err != nil {
        return nil, fmt.Errorf("%w: list logged meals: %v", ErrStorage, err)
    }
    return meals, nil
}

func (s *LoggedMealService) ListByRange(userID uint, start, end time.Time) ([]models.LoggedMeal, error) {
    meals, err := s.meals.LoggedMealsByRange(userID, start, end)
    if err != nil {
        return nil, fmt.Errorf("%w: list logged meals: %v", ErrStorage, err)
    }
    return meals, nil
}

func (s *LoggedMealService) Delete(mealID, userID uint) error {
    err := s.meals.DeleteLoggedMeal(mealID, userID)
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return fmt.Errorf("%w: meal not found", ErrNotFound)
    }
    if err != nil {
        return fmt.Errorf("%w: delete logged meal: %v", ErrStorage, err)
    }

    s.broadcast(userID, "meal_deleted", mealID)
    return nil
}

func (s *LoggedMealService) broadcast(userID uint, event string, data interface{}) {
    if s.hub == nil {
        return
    }
    s.hub.Broadcast(userID, Event{Type: event, Data: data})
}
