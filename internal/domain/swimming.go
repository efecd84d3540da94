package domain

const (
	// swimmingLenStep is the distance in meters covered by a single stroke.
	swimmingLenStep = 1.38

	swimmingCaloriesSpeedShift       = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim. Distance comes from the stroke count, speed from the pool laps.
type Swimming struct {
	workout
	poolLength float64
	poolCount  float64
}

// NewSwimming constructs a Swimming workout. Pool length is in meters.
func NewSwimming(action int, duration, weight, poolLength, poolCount float64) (Swimming, error) {
	w, err := newWorkout(action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	return Swimming{workout: w, poolLength: poolLength, poolCount: poolCount}, nil
}

// PoolLengthM returns the pool length in meters.
func (s Swimming) PoolLengthM() float64 { return s.poolLength }

// PoolLapCount returns how many times the pool was crossed.
func (s Swimming) PoolLapCount() float64 { return s.poolCount }

// Code returns CodeSwimming.
func (Swimming) Code() Code { return CodeSwimming }

// DistanceKm returns the distance covered, using the stroke length.
func (s Swimming) DistanceKm() float64 {
	return s.distanceKm(swimmingLenStep)
}

// MeanSpeedKmh returns the speed from the pool laps. The stroke count is not used.
func (s Swimming) MeanSpeedKmh() float64 {
	return s.poolLength * s.poolCount / metersPerKm / s.duration
}

// CaloriesKcal returns the energy spent during the swim.
func (s Swimming) CaloriesKcal() float64 {
	return (s.MeanSpeedKmh() + swimmingCaloriesSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight
}

// Describe returns the summary of the swim.
func (s Swimming) Describe() InfoMessage { return describe(s) }
