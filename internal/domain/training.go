// Package domain implements the workout calculations for the supported training types.
package domain

import "fmt"

const (
	metersPerKm    = 1000
	minutesPerHour = 60

	// lenStep is the distance in meters covered by a single step.
	lenStep = 0.65
)

// Training is a completed workout built from one sensor package.
//
// Only Running, Walking and Swimming implement it.
type Training interface {
	Code() Code
	DurationHours() float64
	DistanceKm() float64
	MeanSpeedKmh() float64
	CaloriesKcal() float64
	Describe() InfoMessage

	training()
}

// workout holds the sensor readings shared by every training type.
type workout struct {
	action   int
	duration float64
	weight   float64
}

func newWorkout(action int, duration, weight float64) (workout, error) {
	if duration == 0 {
		return workout{}, fmt.Errorf("%w: duration must be non-zero", ErrInvalidParameter)
	}
	return workout{action: action, duration: duration, weight: weight}, nil
}

// ActionCount returns the number of steps or strokes recorded by the sensor.
func (w workout) ActionCount() int { return w.action }

// DurationHours returns the workout duration in hours.
func (w workout) DurationHours() float64 { return w.duration }

// BodyWeightKg returns the athlete body weight in kilograms.
func (w workout) BodyWeightKg() float64 { return w.weight }

// DistanceKm returns the distance covered, using the step length.
func (w workout) DistanceKm() float64 {
	return w.distanceKm(lenStep)
}

// MeanSpeedKmh returns the distance divided by the duration.
func (w workout) MeanSpeedKmh() float64 {
	return w.DistanceKm() / w.duration
}

func (w workout) distanceKm(step float64) float64 {
	return float64(w.action) * step / metersPerKm
}

func (workout) training() {}

func describe(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Code().DisplayName(),
		DurationH:    t.DurationHours(),
		DistanceKm:   t.DistanceKm(),
		SpeedKmh:     t.MeanSpeedKmh(),
		CaloriesKcal: t.CaloriesKcal(),
	}
}
