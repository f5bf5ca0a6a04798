package services

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strconv"
    "time"

    "github.com/nst-sdc/Diet-Planner/models"
    "github.com/nst-sdc/Diet-Planner/utils"
)

// USDA FoodData Central nutrient codes for the common schema.
const (
    usdaNutrientEnergy  = 1008
    usdaNutrientProtein = 1003
    usdaNutrientCarbs   = 1005
    usdaNutrientFat     = 1004
)

type USDAService struct {
    apiKey  string
    baseURL string
    client  *http.Client
}

// NewUSDAService initializes the USDA FoodData Central client.
func NewUSDAService(apiKey string) *USDAService {
    return &USDAService{
        apiKey:  apiKey,
        baseURL: "https://api.nal.usda.gov/fdc/v1",
        client:  &http.Client{Timeout: 10 * time.Second},
    }
}

type usdaSearchResponse struct {
    Foods []struct {
        FdcID         int64  `json:"fdcId"`
        Description   string `json:"description"`
        FoodNutrients []struct {
            NutrientID int     `json:"nutrientId"`
            Value      float64 `json:"value"`
        } `json:"foodNutrients"`
    } `json:"foods"`
}

// Search calls the foods/search endpoint, restricted to the Foundation and
// SR Legacy data types, and normalizes the nutrient arrays to FoodItem.
// Missing nutrient codes default to 0.
func (s *USDAService) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
    params := url.Values{}
    params.Set("api_key", s.apiKey)
    params.Set("query", query)
    params.Set("pageSize", "5")
    params.Set("dataType", "Foundation,SR Legacy")
    u := fmt.Sprintf("%s/foods/search?%s", s.baseURL, params.Encode())

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
    if err != nil {
        return nil, fmt.Errorf("failed to create USDA request: %w", err)
    }

    resp, err := s.client.Do(req)
    if err != nil {
        return nil, fmt.Errorf("failed to call USDA search: %w", err)
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, fmt.Errorf("failed to read USDA response: %w", err)
    }
    if resp.StatusCode != http.StatusOK {
        return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
    }

    var sr usdaSearchResponse
    if err := json.Unmarshal(body, &sr); err != nil {
        return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
    }

    results := make([]models.FoodItem, 0, len(sr.Foods))
    for _, food := range sr.Foods {
        var calories, protein, carbs, fat float64
        for _, n := range food.FoodNutrients {
            switch n.NutrientID {
            case usdaNutrientEnergy:
                calories = n.Value
            case usdaNutrientProtein:
                protein = n.Value
            case usdaNutrientCarbs:
                carbs = n.Value
            case usdaNutrientFat:
                fat = n.Value
            }
        }
        results = append(results, models.FoodItem{
            ID:       strconv.FormatInt(food.FdcID, 10),
            Name:     food.Description,
            Calories: utils.RoundCalories(calories),
            Protein:  utils.RoundMacro(protein),
            Carbs:    utils.RoundMacro(carbs),
            Fat:      utils.RoundMacro(fat),
            Source:   models.SourceUSDA,
        })
    }
    return results, nil
}
