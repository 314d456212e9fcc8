package core

import "math"

// Orbit camera defaults. Double-click restores these targets.
const (
	DefaultDistance  = 12.0
	DefaultElevation = 0.3
	DefaultAzimuth   = 0.0

	minCameraDistance = 4.0
	maxCameraDistance = 30.0

	// Per-update easing factor toward the target, a time constant of
	// roughly ten frames at a steady framerate.
	cameraDamping = 0.1

	dragSensitivity = 0.005
	zoomStep        = 0.1
)

// OrbitCamera orbits a fixed look-at point at the origin. Input handlers
// only ever move the target spherical coordinates; Update eases the
// current coordinates toward them every frame, so all motion is smoothed
// through the same path.
type OrbitCamera struct {
	Azimuth   float64 // radians, unbounded
	Elevation float64 // radians, unbounded; no gimbal clamp
	Distance  float64

	TargetAzimuth   float64
	TargetElevation float64
	TargetDistance  float64

	MinDistance float64
	MaxDistance float64
	Damping     float64

	AutoRotate      bool
	AutoRotateSpeed float64
}

// NewOrbitCamera returns a camera at the default distance and elevation
// with auto-rotation enabled.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Azimuth:         DefaultAzimuth,
		Elevation:       DefaultElevation,
		Distance:        DefaultDistance,
		TargetAzimuth:   DefaultAzimuth,
		TargetElevation: DefaultElevation,
		TargetDistance:  DefaultDistance,
		MinDistance:     minCameraDistance,
		MaxDistance:     maxCameraDistance,
		Damping:         cameraDamping,
		AutoRotate:      true,
		AutoRotateSpeed: 0.1,
	}
}

// Update retargets the sweep when auto-rotating, then eases the current
// spherical coordinates toward their targets. elapsed is total scene time
// in seconds, so auto-rotate motion is a pure function of the clock.
func (c *OrbitCamera) Update(elapsed float64) {
	if c.AutoRotate {
		c.TargetAzimuth = elapsed * c.AutoRotateSpeed * 2
		c.TargetElevation = DefaultElevation + math.Sin(elapsed*0.1)*0.15
	}

	c.Azimuth += (c.TargetAzimuth - c.Azimuth) * c.Damping
	c.Elevation += (c.TargetElevation - c.Elevation) * c.Damping
	c.Distance += (c.TargetDistance - c.Distance) * c.Damping

	// Keep azimuth bounded over long sessions. Shifting current and
	// target by the same whole turns leaves the easing and the eye
	// position untouched.
	if math.Abs(c.Azimuth) > 2*math.Pi {
		turns := math.Floor(c.Azimuth / (2 * math.Pi))
		c.Azimuth -= turns * 2 * math.Pi
		c.TargetAzimuth -= turns * 2 * math.Pi
	}
}

// Rotate translates a pointer drag in pixels into target angle deltas.
// Rightward drag decreases azimuth, downward drag raises elevation.
// Dragging cancels auto-rotation until the next reset.
func (c *OrbitCamera) Rotate(dx, dy float64) {
	c.AutoRotate = false
	c.TargetAzimuth -= dx * dragSensitivity
	c.TargetElevation += dy * dragSensitivity
}

// Zoom steps the target distance by one wheel notch. dir > 0 zooms out.
// Zooming cancels auto-rotation until the next reset.
func (c *OrbitCamera) Zoom(dir float64) {
	c.AutoRotate = false
	step := zoomStep
	if dir < 0 {
		step = -zoomStep
	}
	c.TargetDistance *= 1 + step
	if c.TargetDistance < c.MinDistance {
		c.TargetDistance = c.MinDistance
	}
	if c.TargetDistance > c.MaxDistance {
		c.TargetDistance = c.MaxDistance
	}
}

// Reset restores the default view targets and re-enables auto-rotation.
// The current coordinates ease back over the following frames rather than
// snapping.
func (c *OrbitCamera) Reset() {
	c.TargetAzimuth = DefaultAzimuth
	c.TargetElevation = DefaultElevation
	c.TargetDistance = DefaultDistance
	c.AutoRotate = true
}

// Eye converts the damped spherical coordinates to the camera's Cartesian
// position around the origin.
func (c *OrbitCamera) Eye() Vec3 {
	cosE := math.Cos(c.Elevation)
	return Vec3{
		float32(c.Distance * cosE * math.Sin(c.Azimuth)),
		float32(c.Distance * math.Sin(c.Elevation)),
		float32(c.Distance * cosE * math.Cos(c.Azimuth)),
	}
}
