package domain

const (
	runningCaloriesSpeedMultiplier = 18
	runningCaloriesSpeedShift      = 20
)

// Running is a run measured in steps.
type Running struct {
	workout
}

// NewRunning constructs a Running workout.
func NewRunning(action int, duration, weight float64) (Running, error) {
	w, err := newWorkout(action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{workout: w}, nil
}

// Code returns CodeRunning.
func (Running) Code() Code { return CodeRunning }

// CaloriesKcal returns the energy spent during the run.
func (r Running) CaloriesKcal() float64 {
	return (runningCaloriesSpeedMultiplier*r.MeanSpeedKmh() - runningCaloriesSpeedShift) *
		r.weight / metersPerKm * r.duration * minutesPerHour
}

// Describe returns the summary of the run.
func (r Running) Describe() InfoMessage { return describe(r) }
