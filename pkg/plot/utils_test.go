package plot

import (
	"math"
	"testing"
)

func TestCalcRange(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		wantMin float64
		wantMax float64
	}{
		{"Empty", nil, 0, 1},
		{"Simple", []float64{3, 1, 2}, 1, 3},
		{"Negative", []float64{-5, -1, -3}, -5, -1},
		{"SingleValue", []float64{10}, 9, 11},
		{"AllZero", []float64{0, 0}, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := CalcRange(tt.data)
			if math.Abs(min-tt.wantMin) > 1e-9 || math.Abs(max-tt.wantMax) > 1e-9 {
				t.Errorf("CalcRange(%v) = (%g,%g), want (%g,%g)",
					tt.data, min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		name             string
		value            float64
		fromMin, fromMax float64
		toMin, toMax     float64
		want             float64
	}{
		{"Identity", 0.5, 0, 1, 0, 1, 0.5},
		{"Scale", 0.5, 0, 1, 0, 680, 340},
		{"Flip", 0.25, 0, 1, 480, 0, 360},
		{"Degenerate", 7, 3, 3, 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapRange(tt.value, tt.fromMin, tt.fromMax, tt.toMin, tt.toMax)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MapRange = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, 1, 6)
	if len(ticks) < 2 {
		t.Fatalf("ticks = %v, want at least 2", ticks)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Errorf("ticks not strictly increasing: %v", ticks)
		}
	}
	if ticks[0] > 0 || ticks[len(ticks)-1] < 1-1e-9 {
		t.Errorf("ticks %v do not cover [0,1]", ticks)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-3, "-3"},
		{0.5, "0.5"},
		{0.125, "0.125"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
