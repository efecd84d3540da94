package domain

import (
	"fmt"
	"math"
)

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// Walking is a race walk measured in steps. Height takes part in the calorie formula.
type Walking struct {
	workout
	height float64
}

// NewWalking constructs a Walking workout. Height is in centimeters.
func NewWalking(action int, duration, weight, height float64) (Walking, error) {
	w, err := newWorkout(action, duration, weight)
	if err != nil {
		return Walking{}, err
	}
	if height == 0 {
		return Walking{}, fmt.Errorf("%w: height must be non-zero", ErrInvalidParameter)
	}
	return Walking{workout: w, height: height}, nil
}

// HeightCm returns the athlete height in centimeters.
func (w Walking) HeightCm() float64 { return w.height }

// Code returns CodeWalking.
func (Walking) Code() Code { return CodeWalking }

// CaloriesKcal returns the energy spent during the walk.
//
// speed²/height is floor-divided, so for ordinary walking speeds the second
// term is zero.
func (w Walking) CaloriesKcal() float64 {
	speed := w.MeanSpeedKmh()
	return (walkingCaloriesWeightMultiplier*w.weight +
		math.Floor(speed*speed/w.height)*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minutesPerHour
}

// Describe returns the summary of the walk.
func (w Walking) Describe() InfoMessage { return describe(w) }
