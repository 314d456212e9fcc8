package core

import (
	"math"
	"testing"
)

func TestDampingConverges(t *testing.T) {
	c := NewOrbitCamera()
	c.AutoRotate = false
	c.TargetAzimuth = 1.5

	prev := math.Abs(c.TargetAzimuth - c.Azimuth)
	for i := 0; i < 200; i++ {
		c.Update(0)
		d := math.Abs(c.TargetAzimuth - c.Azimuth)
		if d > prev {
			t.Fatalf("step %d: distance grew from %f to %f", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Errorf("azimuth still %f from target after 200 steps", prev)
	}
}

func TestZoomClamping(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.Zoom(1)
	}
	if c.TargetDistance != c.MaxDistance {
		t.Errorf("zoomed out to %f, want clamp at %f", c.TargetDistance, c.MaxDistance)
	}

	for i := 0; i < 100; i++ {
		c.Zoom(-1)
	}
	if c.TargetDistance != c.MinDistance {
		t.Errorf("zoomed in to %f, want clamp at %f", c.TargetDistance, c.MinDistance)
	}
}

func TestManualInputDisablesAutoRotate(t *testing.T) {
	c := NewOrbitCamera()
	c.Rotate(10, 5)
	if c.AutoRotate {
		t.Error("drag should disable auto-rotation")
	}

	c = NewOrbitCamera()
	c.Zoom(1)
	if c.AutoRotate {
		t.Error("zoom should disable auto-rotation")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c := NewOrbitCamera()
	c.Rotate(300, -150)
	c.Zoom(1)
	c.Zoom(1)

	c.Reset()

	if !c.AutoRotate {
		t.Error("reset should re-enable auto-rotation")
	}
	if c.TargetDistance != DefaultDistance {
		t.Errorf("target distance %f, want %f", c.TargetDistance, DefaultDistance)
	}
	if c.TargetAzimuth != DefaultAzimuth {
		t.Errorf("target azimuth %f, want %f", c.TargetAzimuth, DefaultAzimuth)
	}
	if c.TargetElevation != DefaultElevation {
		t.Errorf("target elevation %f, want %f", c.TargetElevation, DefaultElevation)
	}
}

func TestRotateDirections(t *testing.T) {
	c := NewOrbitCamera()
	az, el := c.TargetAzimuth, c.TargetElevation

	c.Rotate(100, 0) // drag right
	if c.TargetAzimuth >= az {
		t.Error("rightward drag should decrease target azimuth")
	}

	c.Rotate(0, 100) // drag down
	if c.TargetElevation <= el {
		t.Error("downward drag should increase target elevation")
	}
}

func TestAutoRotateDeterministic(t *testing.T) {
	a := NewOrbitCamera()
	b := NewOrbitCamera()

	for i := 1; i <= 300; i++ {
		elapsed := float64(i) / 60
		a.Update(elapsed)
		b.Update(elapsed)
	}

	if a.Azimuth != b.Azimuth || a.Elevation != b.Elevation || a.Distance != b.Distance {
		t.Error("identical update sequences diverged")
	}
}

func TestAzimuthNormalizationPreservesEye(t *testing.T) {
	c := NewOrbitCamera()
	c.AutoRotate = false

	big := 25.0 // several turns past 2π
	c.Azimuth = big
	c.TargetAzimuth = big
	c.Update(0)

	if math.Abs(c.Azimuth) > 2*math.Pi {
		t.Errorf("azimuth %f not renormalized", c.Azimuth)
	}

	want := NewOrbitCamera()
	want.AutoRotate = false
	want.Azimuth = math.Mod(big, 2*math.Pi)
	want.TargetAzimuth = want.Azimuth

	got, ref := c.Eye(), want.Eye()
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-ref[i])) > 1e-4 {
			t.Errorf("eye component %d: got %f, want %f", i, got[i], ref[i])
		}
	}
}

func TestEyeAtDefaults(t *testing.T) {
	c := NewOrbitCamera()
	eye := c.Eye()

	// Azimuth 0 puts the camera on the +Z side, elevation 0.3 above the
	// orbital plane, at the default distance.
	wantY := float32(DefaultDistance * math.Sin(DefaultElevation))
	wantZ := float32(DefaultDistance * math.Cos(DefaultElevation))
	if math.Abs(float64(eye[0])) > 1e-5 {
		t.Errorf("eye x = %f, want 0", eye[0])
	}
	if math.Abs(float64(eye[1]-wantY)) > 1e-5 {
		t.Errorf("eye y = %f, want %f", eye[1], wantY)
	}
	if math.Abs(float64(eye[2]-wantZ)) > 1e-5 {
		t.Errorf("eye z = %f, want %f", eye[2], wantZ)
	}
}
