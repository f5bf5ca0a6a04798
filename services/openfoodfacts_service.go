package services

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "time"

    "github.com/nst-sdc/Diet-Planner/models"
    "github.com/nst-sdc/Diet-Planner/utils"
)

type OpenFoodFactsService struct {
    baseURL string
    client  *http.Client
}

// NewOpenFoodFactsService initializes the Open Food Facts client. The API
// needs no credentials.
func NewOpenFoodFactsService() *OpenFoodFactsService {
    return &OpenFoodFactsService{
        baseURL: "https://world.openfoodfacts.org/api/v0",
        client:  &http.Client{Timeout: 10 * time.Second},
    }
}

type offSearchResponse struct {
    Products []struct {
        Code        string `json:"code"`
        LegacyID    string `json:"_id"`
        ProductName string `json:"product_name"`
        Nutriments  struct {
            EnergyKcal       float64 `json:"energy_kcal_100g"`
            EnergyKcalHyphen float64 `json:"energy-kcal_100g"`
            Proteins         float64 `json:"proteins_100g"`
            Carbohydrates    float64 `json:"carbohydrates_100g"`
            Fat              float64 `json:"fat_100g"`
        } `json:"nutriments"`
    } `json:"products"`
}

// Search calls the text-search endpoint and normalizes per-100g nutriments
// to FoodItem. Missing fields default to 0; products without a usable name
// are dropped.
func (s *OpenFoodFactsService) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
    params := url.Values{}
    params.Set("search_terms", query)
    params.Set("search_simple", "1")
    params.Set("action", "process")
    params.Set("json", "1")
    params.Set("page_size", "5")
    u := fmt.Sprintf("%s/cgi/search.pl?%s", s.baseURL, params.Encode())

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
    if err != nil {
        return nil, fmt.Errorf("failed to create Open Food Facts request: %w", err)
    }

    resp, err := s.client.Do(req)
    if err != nil {
        return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, fmt.Errorf("failed to read Open Food Facts response: %w", err)
    }
    if resp.StatusCode != http.StatusOK {
        return nil, fmt.Errorf("Open Food Facts API error %d: %s", resp.StatusCode, string(body))
    }

    var sr offSearchResponse
    if err := json.Unmarshal(body, &sr); err != nil {
        return nil, fmt.Errorf("failed to parse Open Food Facts JSON: %w", err)
    }

    results := make([]models.FoodItem, 0, len(sr.Products))
    for _, p := range sr.Products {
        // "Unknown Product" is the upstream placeholder for missing names
        if p.ProductName == "" || p.ProductName == "Unknown Product" {
            continue
        }

        calories := p.Nutriments.EnergyKcal
        if calories == 0 {
            calories = p.Nutriments.EnergyKcalHyphen
        }

        id := p.Code
        if id == "" {
            id = p.LegacyID
        }

        results = append(results, models.FoodItem{
            ID:       id,
            Name:     p.ProductName,
            Calories: utils.RoundCalories(calories),
            Protein:  utils.RoundMacro(p.Nutriments.Proteins),
            Carbs:    utils.RoundMacro(p.Nutriments.Carbohydrates),
            Fat:      utils.RoundMacro(p.Nutriments.Fat),
            Source:   models.SourceOpenFoodFacts,
        })
    }
    return results, nil
}
