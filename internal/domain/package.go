package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownActivityCode indicates a package carried an activity code that is not supported.
	ErrUnknownActivityCode = errors.New("unknown activity code")
	// ErrParameterCount is returned when a package does not carry exactly the parameters its code expects.
	ErrParameterCount = errors.New("unexpected parameter count")
	// ErrInvalidParameter is returned when a parameter cannot be used by the training formulas.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Package is one raw reading from the sensor: an activity code and its positional parameters.
//
// Running expects action, duration, weight. Walking adds height. Swimming
// expects action, duration, weight, pool length and pool count.
type Package struct {
	Code string
	Data []float64
}

// Read builds the Training described by the package.
func (p Package) Read() (Training, error) {
	return ReadPackage(p.Code, p.Data)
}

// ReadPackage builds the Training for code from the positional sensor data.
func ReadPackage(code string, data []float64) (Training, error) {
	c, err := ParseCode(code)
	if err != nil {
		return nil, err
	}
	if len(data) != c.Arity() {
		return nil, fmt.Errorf("%w: %s expects %d parameters, got %d", ErrParameterCount, c, c.Arity(), len(data))
	}

	action, err := actionCount(data[0])
	if err != nil {
		return nil, err
	}

	switch c {
	case CodeSwimming:
		return asTraining(NewSwimming(action, data[1], data[2], data[3], data[4]))
	case CodeRunning:
		return asTraining(NewRunning(action, data[1], data[2]))
	case CodeWalking:
		return asTraining(NewWalking(action, data[1], data[2], data[3]))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownActivityCode, code)
}

func asTraining[T Training](t T, err error) (Training, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func actionCount(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: action count must be a whole number, got %v", ErrInvalidParameter, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: action count %v out of range", ErrInvalidParameter, v)
	}
	return int(v), nil
}
