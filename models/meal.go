package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal is a reusable entry in the user's meal library.
type Meal struct {
    gorm.Model
    UserID      uint       `gorm:"index;not null" json:"user_id"`
    Name        string     `gorm:"not null" json:"name"`
    Calories    float64    `json:"calories"`
    Protein     float64    `json:"protein"`
    Carbs       float64    `json:"carbs"`
    Fat         float64    `json:"fat"`
    PlannedDate *time.Time `json:"planned_date"`
}
