package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nst-sdc/Diet-Planner/models"

	"gorm.io/gorm"
)

type goalStore interface {
	GoalByUser(userID uint) (*models.DailyGoal, error)
	CreateGoal(g *models.DailyGoal) error
	SaveGoal(g *models.DailyGoal) error
	DeleteGoal(userID uint) error
}

type progressMealReader interface {
	LoggedMealsByDate(userID uint, date time.Time) ([]models.LoggedMeal, error)
}

// DailyGoalService stores each user's macro/calorie targets and reports
// adherence against the meals logged for a day.
type DailyGoalService struct {
	goals goalStore
	meals progressMealReader
	hub   notifier // optional
}

func NewDailyGoalService(goals goalStore, meals progressMealReader, hub notifier) *DailyGoalService {
	return &DailyGoalService{goals: goals, meals: meals, hub: hub}
}

// Get returns the user's goal, or nil when none has been saved yet.
func (s *DailyGoalService) Get(userID uint) (*models.DailyGoal, error) {
	goal, err := s.goals.GoalByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get goals: %v", ErrStorage, err)
	}
	return goal, nil
}

func (s *DailyGoalService) Upsert(userID uint, calories, protein, carbs, fat float64) (*models.DailyGoal, error) {
	goal, err := s.goals.GoalByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = &models.DailyGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		if err := s.goals.CreateGoal(goal); err != nil {
			return nil, fmt.Errorf("%w: create goals: %v", ErrStorage, err)
		}
		s.broadcast(userID, goal)
		return goal, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get goals: %v", ErrStorage, err)
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	if err := s.goals.SaveGoal(goal); err != nil {
		return nil, fmt.Errorf("%w: save goals: %v", ErrStorage, err)
	}

	s.broadcast(userID, goal)
	return goal, nil
}

func (s *DailyGoalService) Delete(userID uint) error {
	if err := s.goals.DeleteGoal(userID); err != nil {
		return fmt.Errorf("%w: delete goals: %v", ErrStorage, err)
	}
	return nil
}

// Progress sums the meals logged on date and reports consumed vs goal per
// nutrient, with the percentage capped at 1.
func (s *DailyGoalService) Progress(userID uint, date time.Time) (*models.DailyGoal, map[string]interface{}, error) {
	goal, err := s.goals.GoalByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = &models.DailyGoal{UserID: userID}
	} else if err != nil {
		return nil, nil, fmt.Errorf("%w: get goals: %v", ErrStorage, err)
	}

	meals, err := s.meals.LoggedMealsByDate(userID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: list logged meals: %v", ErrStorage, err)
	}

	var cals, prot, carbs, fat float64
	for _, m := range meals {
		cals += m.Calories
		prot += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	progress := map[string]interface{}{
		"calories": map[string]float64{"consumed": cals, "goal": goal.Calories, "percent": pct(cals, goal.Calories)},
		"protein":  map[string]float64{"consumed": prot, "goal": goal.Protein, "percent": pct(prot, goal.Protein)},
		"carbs":    map[string]float64{"consumed": carbs, "goal": goal.Carbs, "percent": pct(carbs, goal.Carbs)},
		"fat":      map[string]float64{"consumed": fat, "goal": goal.Fat, "percent": pct(fat, goal.Fat)},
	}

	return goal, progress, nil
}

func (s *DailyGoalService) broadcast(userID uint, goal *models.DailyGoal) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(userID, Event{Type: "goals_updated", Data: goal})
}
