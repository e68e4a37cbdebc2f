package mathutil

import (
	"math"
	"testing"
)

func TestLimit(t *testing.T) {
	if v := LimitFloat64(-1, 0, 10); v != 0 {
		t.Fatal(v)
	}
	if v := LimitFloat64(11, 0, 10); v != 10 {
		t.Fatal(v)
	}
	if v := LimitInt(5, 0, 10); v != 5 {
		t.Fatal(v)
	}
	if v := LimitInt(-5, 0, 10); v != 0 {
		t.Fatal(v)
	}
}

func TestRoundInt(t *testing.T) {
	type pair struct {
		in  float64
		out int
	}
	pairs := []pair{{98.33, 98}, {98.5, 99}, {0.49, 0}, {-1.5, -2}}
	for _, p := range pairs {
		if v := RoundInt(p.in); v != p.out {
			t.Fatalf("%v: %v != %v", p.in, v, p.out)
		}
	}
}

func TestIsFinite(t *testing.T) {
	zero := 0.0
	if IsFinite(1 / zero) {
		t.Fatal("inf")
	}
	if IsFinite(math.NaN()) {
		t.Fatal("nan")
	}
	if !IsFinite(3) {
		t.Fatal()
	}
}
