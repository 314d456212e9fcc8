package core

// PlanetRecord is one row of the transit catalog: the planet currently on
// display and its host star. The engine treats records as immutable
// snapshots; validation (positive period, radius and stellar temperature)
// happens in the dataset loader before a record ever reaches the renderer.
type PlanetRecord struct {
	Mission  string // kepler, k2 or tess
	ObjectID string

	Magnitude   float64 // t_mag
	PeriodDays  float64
	DurationHr  float64
	DepthPPM    float64
	RadiusRatio float64 // Rp/R*
	AOverRstar  float64
	RadiusEarth float64
	InsolEarth  float64
	EqTempK     float64

	StarTeffK  float64
	StarLogG   float64
	StarRadSun float64

	RADeg  float64
	DecDeg float64
}
