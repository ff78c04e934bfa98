package temperature

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		f, want float64
	}{
		{32, 0},
		{68, 20},
		{212, 100},
		{-40, -40},
	}
	for _, tt := range tests {
		if got := FahrenheitToCelsius(tt.f); math.Abs(got-tt.want) > epsilon {
			t.Errorf("FahrenheitToCelsius(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		c, want float64
	}{
		{0, 32},
		{20, 68},
		{100, 212},
		{-40, -40},
	}
	for _, tt := range tests {
		if got := CelsiusToFahrenheit(tt.c); math.Abs(got-tt.want) > epsilon {
			t.Errorf("CelsiusToFahrenheit(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, f := range []float64{-459.67, 0, 32, 98.6, 451} {
		got := Convert(Convert(f, Celsius), Fahrenheit)
		if math.Abs(got-f) > 1e-6 {
			t.Errorf("round trip of %v = %v", f, got)
		}
	}
}

func TestParseScale(t *testing.T) {
	tests := []struct {
		in      string
		want    Scale
		wantErr bool
	}{
		{in: "c", want: Celsius},
		{in: "Celsius", want: Celsius},
		{in: " F ", want: Fahrenheit},
		{in: "fahrenheit", want: Fahrenheit},
		{in: "kelvin", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseScale(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownScale) {
				t.Errorf("ParseScale(%q) error = %v, want ErrUnknownScale", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseScale(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestScale_Other(t *testing.T) {
	if Celsius.Other() != Fahrenheit || Fahrenheit.Other() != Celsius {
		t.Error("Other() is not an involution")
	}
}

func TestBelowAbsoluteZero(t *testing.T) {
	tests := []struct {
		v     float64
		scale Scale
		want  bool
	}{
		{-459.67, Fahrenheit, false},
		{-460, Fahrenheit, true},
		{-273.15, Celsius, false},
		{-300, Celsius, true},
		{-300, Fahrenheit, false},
	}
	for _, tt := range tests {
		if got := BelowAbsoluteZero(tt.v, tt.scale); got != tt.want {
			t.Errorf("BelowAbsoluteZero(%v, %v) = %v, want %v", tt.v, tt.scale, got, tt.want)
		}
	}
}
