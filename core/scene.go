package core

import "math"

// Visual scaling constants. These map catalog values onto scene units; the
// clamps keep extreme systems (hot Jupiters at a/R* < 5, giants at
// R* > 10 Rsun) on screen.
const (
	starScaleFactor   = 0.3
	minStarScale      = 0.5
	maxStarScale      = 1.2
	planetScaleFactor = 0.1
	minPlanetScale    = 0.2
	maxPlanetScale    = 0.8
	orbitRadiusFactor = 0.2
	minOrbitRadius    = 3.0
	maxOrbitRadius    = 7.0

	// Angular rate numerator: a planet with a 10-day period completes one
	// visual orbit per elapsed second. Not Keplerian, purely cosmetic.
	orbitSpeedConstant = 10.0

	// OrbitPathSegments is the vertex count of the orbit line loop.
	OrbitPathSegments = 128
)

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// StarScale converts a stellar radius in solar radii to a scene-space
// sphere scale.
func StarScale(starRadSun float64) float32 {
	return float32(clamp(starRadSun*starScaleFactor, minStarScale, maxStarScale))
}

// PlanetScale converts a planet radius in Earth radii to a scene-space
// sphere scale.
func PlanetScale(radiusEarth float64) float32 {
	return float32(clamp(radiusEarth*planetScaleFactor, minPlanetScale, maxPlanetScale))
}

// OrbitRadius converts the semi-major-axis/star-radius ratio to a
// scene-space orbit radius.
func OrbitRadius(aOverRstar float64) float32 {
	return float32(clamp(aOverRstar*orbitRadiusFactor, minOrbitRadius, maxOrbitRadius))
}

// OrbitAngle returns the planet's orbital phase angle in radians after
// elapsed seconds. Shorter periods orbit faster. A non-positive period is
// treated as one day rather than dividing by zero.
func OrbitAngle(elapsed, periodDays float64) float64 {
	if periodDays <= 0 {
		periodDays = 1
	}
	return elapsed * orbitSpeedConstant / periodDays
}

// OrbitPosition places the planet on a circular orbit in the horizontal
// plane. At angle 0 the planet sits at (radius, 0, 0).
func OrbitPosition(angle float64, radius float32) Vec3 {
	return Vec3{
		float32(math.Cos(angle)) * radius,
		0,
		float32(math.Sin(angle)) * radius,
	}
}

// OrbitPath fills out with a line loop of OrbitPathSegments vertices at
// the given radius in the horizontal plane and returns it. out is reused
// across calls so the path can be rebuilt without allocation when the
// radius changes.
func OrbitPath(out []float32, radius float32) []float32 {
	out = out[:0]
	for i := 0; i < OrbitPathSegments; i++ {
		a := 2 * math.Pi * float64(i) / OrbitPathSegments
		out = append(out,
			float32(math.Cos(a))*radius,
			0,
			float32(math.Sin(a))*radius)
	}
	return out
}
