package models

import (
    "time"

    "gorm.io/gorm"
)

// PlannedMeal is a calendar slot (breakfast, lunch, dinner, snack) for a
// given day. Macros are optional at planning time.
type PlannedMeal struct {
    gorm.Model
    UserID      uint      `gorm:"index;not null" json:"user_id"`
    Name        string    `gorm:"not null" json:"name"`
    PlannedDate time.Time `gorm:"index;not null" json:"planned_date"`
    MealType    string    `gorm:"not null" json:"meal_type"`
    Calories    *float64  `json:"calories"`
    Protein     *float64  `json:"protein"`
    Carbs       *float64  `json:"carbs"`
    Fat         *float64  `json:"fat"`
}
