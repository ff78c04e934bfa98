package temperature

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScale is returned by ParseScale for unrecognised names
var ErrUnknownScale = errors.New("unknown temperature scale")

// Scale identifies a temperature scale
type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
)

func (s Scale) String() string {
	switch s {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// Symbol returns the unit suffix, e.g. "°C"
func (s Scale) Symbol() string {
	if s == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Other returns the scale a value is converted from when converting into s.
func (s Scale) Other() Scale {
	if s == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// ParseScale accepts "c", "celsius", "f" or "fahrenheit" in any case.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScale, s)
	}
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * (5.0 / 9.0)
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*(9.0/5.0) + 32
}

// Convert converts v into the given scale from the other one.
func Convert(v float64, to Scale) float64 {
	if to == Celsius {
		return FahrenheitToCelsius(v)
	}
	return CelsiusToFahrenheit(v)
}

// AbsoluteZero returns 0 K expressed in the given scale
func AbsoluteZero(s Scale) float64 {
	if s == Fahrenheit {
		return -459.67
	}
	return -273.15
}

// BelowAbsoluteZero reports whether v, read in scale s, is physically impossible.
func BelowAbsoluteZero(v float64, s Scale) bool {
	return v < AbsoluteZero(s)
}
