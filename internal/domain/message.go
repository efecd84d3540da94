package domain

import "fmt"

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage is the summary of a finished training.
type InfoMessage struct {
	TrainingType string
	DurationH    float64
	DistanceKm   float64
	SpeedKmh     float64
	CaloriesKcal float64
}

// Message renders the summary as a single line.
func (m InfoMessage) Message() string {
	return FormatMessage(m.TrainingType, m.DurationH, m.DistanceKm, m.SpeedKmh, m.CaloriesKcal)
}

// FormatMessage renders a training summary with three decimal places per number.
func FormatMessage(trainingType string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf(messageTemplate, trainingType, duration, distance, speed, calories)
}
