package utils

import "math"

// RoundCalories rounds kilocalories to the nearest whole unit.
func RoundCalories(v float64) float64 {
    return math.Round(v)
}

// RoundMacro rounds grams to one decimal place.
func RoundMacro(v float64) float64 {
    return math.Round(v*10) / 10
}
