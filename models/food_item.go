package models

type FoodSource string

const (
    SourceCustom        FoodSource = "custom"
    SourceUSDA          FoodSource = "usda"
    SourceOpenFoodFacts FoodSource = "openfoodfacts"
)

// FoodItem is a single search result, already normalized to the common
// nutrient schema. It is never persisted; LoggedMeal holds the snapshot
// once the user logs a food.
type FoodItem struct {
    ID       string     `json:"id"` // source-scoped: fdcId, barcode, or "custom-<id>"
    Name     string     `json:"name"`
    Calories float64    `json:"calories"` // kcal, whole units
    Protein  float64    `json:"protein"`  // grams, one decimal
    Carbs    float64    `json:"carbs"`
    Fat      float64    `json:"fat"`
    Source   FoodSource `json:"source"`
}
