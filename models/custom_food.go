package models

import (
    "gorm.io/gorm"
)

// CustomFood is a per-user cache of manually entered foods, nutrient values
// per 100g. Created lazily on first manual entry, never auto-updated, and
// served as a private fourth source during search.
type CustomFood struct {
    gorm.Model
    UserID   uint    `gorm:"index;not null" json:"user_id"`
    Name     string  `gorm:"not null" json:"name"`
    Calories float64 `json:"calories"`
    Protein  float64 `json:"protein"`
    Carbs    float64 `json:"carbs"`
    Fat      float64 `json:"fat"`
}
