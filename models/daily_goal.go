package models

import (
    "gorm.io/gorm"
)

// DailyGoal holds each user’s daily macro/calorie targets.
type DailyGoal struct {
    gorm.Model
    UserID   uint    `gorm:"uniqueIndex;not null" json:"user_id"`
    Calories float64 `json:"calories"` // e.g. 2000 kcal
    Protein  float64 `json:"protein"`  // e.g. 100 g
    Carbs    float64 `json:"carbs"`    // e.g. 250 g
    Fat      float64 `json:"fat"`      // e.g. 67 g
}
