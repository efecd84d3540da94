package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numberPattern = regexp.MustCompile(`-?\d+\.\d+`)

func TestFormatMessageUsesThreeDecimals(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		distance float64
		speed    float64
		calories float64
	}{
		{"zeros", 0, 0, 0, 0},
		{"tiny", 0.0001, 0.0004, 0.0005, 0.0006},
		{"fractional", 1.23456, 7.5, 9.9999, 123.4564},
		{"large", 12345678.9, 98765432.1, 1e9, 5e10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := FormatMessage("Running", tc.duration, tc.distance, tc.speed, tc.calories)

			numbers := numberPattern.FindAllString(msg, -1)
			require.Len(t, numbers, 4)
			for _, n := range numbers {
				assert.Regexp(t, `^-?\d+\.\d{3}$`, n)
			}
		})
	}
}

func TestFormatMessageFieldOrder(t *testing.T) {
	msg := FormatMessage("Swimming", 1.5, 2.25, 3.125, 4.0626)
	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.500 ч.; Дистанция: 2.250 км; Ср. скорость: 3.125 км/ч; Потрачено ккал: 4.063.",
		msg)
}

func TestInfoMessageMessage(t *testing.T) {
	info := InfoMessage{TrainingType: "SportsWalking", DurationH: 2, DistanceKm: 10, SpeedKmh: 5, CaloriesKcal: 300}
	assert.Equal(t, FormatMessage("SportsWalking", 2, 10, 5, 300), info.Message())
}
