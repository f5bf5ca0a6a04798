package models

import (
    "time"

    "gorm.io/gorm"
)

// LoggedMeal is one consumed food entry. The nutrient fields always hold
// absolute amounts for the currently stored Quantity; BaseQuantity is the
// serving size the values were originally recorded at and never changes
// after creation.
type LoggedMeal struct {
    gorm.Model
    UserID       uint      `gorm:"index;not null" json:"user_id"`
    Name         string    `gorm:"not null" json:"name"`
    Calories     float64   `json:"calories"`
    Protein      float64   `json:"protein"`
    Carbs        float64   `json:"carbs"`
    Fat          float64   `json:"fat"`
    Quantity     float64   `gorm:"default:100" json:"quantity"`      // grams
    BaseQuantity float64   `gorm:"default:100" json:"base_quantity"` // grams
    MealDate     time.Time `gorm:"index" json:"meal_date"`
    LoggedAt     time.Time `json:"logged_at"`
}
