package services

import (
    "context"
    "fmt"
    "log"
    "strings"
    "sync"
    "time"

    "github.com/nst-sdc/Diet-Planner/models"
    "github.com/nst-sdc/Diet-Planner/utils"
)

type customFoodSource interface {
    CustomFoodsByName(userID uint, query string) ([]models.CustomFood, error)
}

type foodSearcher interface {
    Search(ctx context.Context, query string) ([]models.FoodItem, error)
}

// NutritionService merges the user's custom foods with the USDA and Open
// Food Facts search results into one ranked, de-duplicated list.
type NutritionService struct {
    foods   customFoodSource
    usda    foodSearcher
    off     foodSearcher
    timeout time.Duration
}

func NewNutritionService(foods customFoodSource, usda, off foodSearcher) *NutritionService {
    return &NutritionService{
        foods:   foods,
        usda:    usda,
        off:     off,
        timeout: 5 * time.Second,
    }
}

// Search looks up query across all three sources. The two external calls run
// concurrently, each under its own timeout, and fail open: an unavailable
// provider contributes an empty slice instead of failing the search. Results
// are ordered custom foods first, then USDA, then Open Food Facts, with
// case-insensitive name duplicates removed (first occurrence wins).
func (s *NutritionService) Search(ctx context.Context, userID uint, query string) ([]models.FoodItem, error) {
    query = strings.TrimSpace(query)
    if query == "" {
        return nil, fmt.Errorf("%w: search query needed", ErrInvalidInput)
    }

    customFoods, err := s.foods.CustomFoodsByName(userID, query)
    if err != nil {
        return nil, fmt.Errorf("%w: custom food lookup: %v", ErrStorage, err)
    }

    var (
        wg       sync.WaitGroup
        usdaData []models.FoodItem
        offData  []models.FoodItem
    )

    wg.Add(2)
    go func() {
        defer wg.Done()
        ctx, cancel := context.WithTimeout(ctx, s.timeout)
        defer cancel()
        items, err := s.usda.Search(ctx, query)
        if err != nil {
            log.Printf("nutrition search: USDA unavailable: %v", err)
            return
        }
        usdaData = items
    }()
    go func() {
        defer wg.Done()
        ctx, cancel := context.WithTimeout(ctx, s.timeout)
        defer cancel()
        items, err := s.off.Search(ctx, query)
        if err != nil {
            log.Printf("nutrition search: Open Food Facts unavailable: %v", err)
            return
        }
        offData = items
    }()
    wg.Wait()

    merged := make([]models.FoodItem, 0, len(customFoods)+len(usdaData)+len(offData))
    for _, food := range customFoods {
        if strings.TrimSpace(food.Name) == "" {
            continue
        }
        merged = append(merged, models.FoodItem{
            ID:       fmt.Sprintf("custom-%d", food.ID),
            Name:     food.Name + " (My Food)",
            Calories: utils.RoundCalories(food.Calories),
            Protein:  utils.RoundMacro(food.Protein),
            Carbs:    utils.RoundMacro(food.Carbs),
            Fat:      utils.RoundMacro(food.Fat),
            Source:   models.SourceCustom,
        })
    }
    merged = append(merged, usdaData...)
    merged = append(merged, offData...)

    return dedupeByName(merged), nil
}

// dedupeByName drops any item whose name matches an earlier item under
// case-insensitive comparison. Deliberately a name-only heuristic.
func dedupeByName(items []models.FoodItem) []models.FoodItem {
    seen := make(map[string]struct{}, len(items))
    out := make([]models.FoodItem, 0, len(items))
    for _, item := range items {
        key := strings.ToLower(item.Name)
        if _, ok := seen[key]; ok {
            continue
        }
        seen[key] = struct{}{}
        out = append(out, item)
    }
    return out
}
