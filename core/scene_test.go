package core

import (
	"math"
	"testing"
)

func TestStarScaleClamps(t *testing.T) {
	cases := []struct {
		radSun float64
		want   float32
	}{
		{0.1, 0.5},  // dwarf clamped up
		{3.0, 0.9},  // within range
		{10.0, 1.2}, // giant clamped down
	}
	for _, c := range cases {
		if got := StarScale(c.radSun); math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("StarScale(%f) = %f, want %f", c.radSun, got, c.want)
		}
	}
}

func TestPlanetScaleClamps(t *testing.T) {
	cases := []struct {
		rearth float64
		want   float32
	}{
		{0.5, 0.2},
		{4.0, 0.4},
		{100.0, 0.8},
	}
	for _, c := range cases {
		if got := PlanetScale(c.rearth); math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("PlanetScale(%f) = %f, want %f", c.rearth, got, c.want)
		}
	}
}

func TestOrbitRadiusClamps(t *testing.T) {
	cases := []struct {
		aOverRstar float64
		want       float32
	}{
		{1, 3},
		{25, 5},
		{100, 7},
	}
	for _, c := range cases {
		if got := OrbitRadius(c.aOverRstar); math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("OrbitRadius(%f) = %f, want %f", c.aOverRstar, got, c.want)
		}
	}
}

func TestOrbitAngle(t *testing.T) {
	if got := OrbitAngle(1, 10); math.Abs(got-1) > 1e-12 {
		t.Errorf("OrbitAngle(1, 10) = %f, want 1", got)
	}
	// Shorter period, faster sweep.
	if OrbitAngle(1, 2) <= OrbitAngle(1, 20) {
		t.Error("shorter period should orbit faster")
	}
}

func TestOrbitAngleZeroPeriodGuard(t *testing.T) {
	if got := OrbitAngle(2, 0); math.Abs(got-20) > 1e-12 {
		t.Errorf("OrbitAngle(2, 0) = %f, want 20 (period treated as 1)", got)
	}
	if got := OrbitAngle(2, -5); math.Abs(got-20) > 1e-12 {
		t.Errorf("OrbitAngle(2, -5) = %f, want 20 (period treated as 1)", got)
	}
}

func TestOrbitPositionAtTimeZero(t *testing.T) {
	for _, period := range []float64{0.5, 3.52, 365, 0} {
		pos := OrbitPosition(OrbitAngle(0, period), 5)
		if pos[0] != 5 || pos[1] != 0 || pos[2] != 0 {
			t.Errorf("period %f: position %v at t=0, want (5, 0, 0)", period, pos)
		}
	}
}

func TestOrbitPositionStaysInPlane(t *testing.T) {
	for a := 0.0; a < 10; a += 0.37 {
		pos := OrbitPosition(a, 4)
		if pos[1] != 0 {
			t.Fatalf("angle %f: y = %f, want 0", a, pos[1])
		}
		r := math.Sqrt(float64(pos[0]*pos[0] + pos[2]*pos[2]))
		if math.Abs(r-4) > 1e-5 {
			t.Fatalf("angle %f: radius %f, want 4", a, r)
		}
	}
}

func TestOrbitPathReusesBuffer(t *testing.T) {
	buf := make([]float32, 0, OrbitPathSegments*3)
	out := OrbitPath(buf, 3)

	if len(out) != OrbitPathSegments*3 {
		t.Fatalf("path has %d floats, want %d", len(out), OrbitPathSegments*3)
	}
	if &out[0] != &buf[:1][0] {
		t.Error("path did not reuse the provided buffer")
	}

	// First vertex is on the +X axis at the path radius.
	if out[0] != 3 || out[1] != 0 || out[2] != 0 {
		t.Errorf("first path vertex (%f, %f, %f), want (3, 0, 0)", out[0], out[1], out[2])
	}
}
