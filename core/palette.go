package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color step tables for star and planet tinting. Thresholds are exclusive
// lower bounds checked in descending order; the first match wins.

// StarColor maps a stellar effective temperature in Kelvin onto a rough
// spectral-class tint, from white F-types down to deep red M-dwarfs.
func StarColor(teffK float64) colorful.Color {
	switch {
	case teffK > 6000:
		return colorful.Color{R: 1.0, G: 1.0, B: 1.0}
	case teffK > 5000:
		return colorful.Color{R: 1.0, G: 1.0, B: 0.7}
	case teffK > 4000:
		return colorful.Color{R: 1.0, G: 0.6, B: 0.3}
	case teffK > 3000:
		return colorful.Color{R: 1.0, G: 0.3, B: 0.3}
	default:
		return colorful.Color{R: 0.8, G: 0.2, B: 0.2}
	}
}

// PlanetColor maps a planet's equilibrium temperature in Kelvin onto a
// tint: lava worlds red, temperate worlds blue, cold worlds grey.
func PlanetColor(eqTempK float64) colorful.Color {
	switch {
	case eqTempK > 1000:
		return colorful.Color{R: 1.0, G: 0.4, B: 0.4}
	case eqTempK > 500:
		return colorful.Color{R: 1.0, G: 0.6, B: 0.3}
	case eqTempK > 273:
		return colorful.Color{R: 0.4, G: 0.6, B: 1.0}
	case eqTempK > 200:
		return colorful.Color{R: 0.6, G: 0.6, B: 1.0}
	default:
		return colorful.Color{R: 0.7, G: 0.7, B: 0.7}
	}
}
