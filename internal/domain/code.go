package domain

import "fmt"

// Code is the three-letter activity tag sent by the sensor.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Codes lists every supported activity code.
var Codes = []Code{CodeSwimming, CodeRunning, CodeWalking}

// ParseCode maps a raw activity code onto a Code. Matching is case-sensitive.
func ParseCode(raw string) (Code, error) {
	switch code := Code(raw); code {
	case CodeSwimming, CodeRunning, CodeWalking:
		return code, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActivityCode, raw)
}

// DisplayName returns the training type name used in summaries.
func (c Code) DisplayName() string {
	switch c {
	case CodeSwimming:
		return "Swimming"
	case CodeRunning:
		return "Running"
	case CodeWalking:
		return "SportsWalking"
	}
	return string(c)
}

// Arity returns the number of positional parameters the code expects.
func (c Code) Arity() int {
	switch c {
	case CodeSwimming:
		return 5
	case CodeRunning:
		return 3
	case CodeWalking:
		return 4
	}
	return 0
}
