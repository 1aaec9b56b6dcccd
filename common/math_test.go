package common

import (
	"math"
	"testing"
)

func TestNormalizeDeg(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in_range", 185, 185},
		{"exactly_360", 360, 0},
		{"negative", -90, 270},
		{"large_negative", -725, 355},
		{"large_positive", 1085, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NormalizeDeg(c.in)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("NormalizeDeg(%v) = %v, want %v", c.in, got, c.want)
			}
			if got < 0 || got >= 360 {
				t.Fatalf("NormalizeDeg(%v) = %v, out of [0, 360)", c.in, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5,0,3) = %v, want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp(-1,0,3) = %v, want 0", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp(2,0,3) = %v, want 2", got)
	}
}

func TestSign(t *testing.T) {
	if Sign(12) != 1 || Sign(-0.5) != -1 || Sign(0) != 0 {
		t.Fatalf("Sign gave unexpected values: %v %v %v", Sign(12), Sign(-0.5), Sign(0))
	}
}
