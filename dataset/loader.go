// Package dataset loads the transit catalog the viewer cycles through.
// The catalog is a comma-delimited text file with a header row and 17
// positional columns matching the mission archive export:
//
//	mission, object_id, t_mag, period_days, dur_hr, depth_ppm, rprstar,
//	a_over_rstar, radius_rearth, insol_earth, eq_temp_k, teff_k, logg_cgs,
//	star_rad_sun, ra_deg, dec_deg, disposition
//
// Only confirmed records with a positive period, planet radius and stellar
// temperature are kept; the renderer never sees a row it cannot display.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"exoviewer/core"
)

const columnCount = 17

// Load reads and validates a catalog file. Rows that fail validation are
// skipped, not fatal; an error is returned only when the file itself is
// unreadable or malformed, or when no usable record survives filtering.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = columnCount
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %v", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog %s has no data rows", path)
	}

	var records []core.PlanetRecord
	skipped := 0
	for _, row := range rows[1:] { // skip header
		rec, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s has no confirmed displayable records (%d skipped)", path, skipped)
	}

	return &Catalog{records: records, skipped: skipped}, nil
}

func parseRow(row []string) (core.PlanetRecord, bool) {
	num := func(s string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return v
	}

	rec := core.PlanetRecord{
		Mission:     strings.ToLower(strings.TrimSpace(row[0])),
		ObjectID:    strings.TrimSpace(row[1]),
		Magnitude:   num(row[2]),
		PeriodDays:  num(row[3]),
		DurationHr:  num(row[4]),
		DepthPPM:    num(row[5]),
		RadiusRatio: num(row[6]),
		AOverRstar:  num(row[7]),
		RadiusEarth: num(row[8]),
		InsolEarth:  num(row[9]),
		EqTempK:     num(row[10]),
		StarTeffK:   num(row[11]),
		StarLogG:    num(row[12]),
		StarRadSun:  num(row[13]),
		RADeg:       num(row[14]),
		DecDeg:      num(row[15]),
	}

	if !confirmed(row[16]) {
		return rec, false
	}
	if rec.PeriodDays <= 0 || rec.RadiusEarth <= 0 || rec.StarTeffK <= 0 {
		return rec, false
	}
	return rec, true
}

func confirmed(disposition string) bool {
	switch strings.ToUpper(strings.TrimSpace(disposition)) {
	case "CONFIRMED", "CP", "KP":
		return true
	}
	return false
}

// Catalog is the filtered record set plus a cycling cursor.
type Catalog struct {
	records []core.PlanetRecord
	skipped int
	cursor  int
}

// Len returns the number of displayable records.
func (c *Catalog) Len() int { return len(c.records) }

// Skipped returns how many rows were dropped during load.
func (c *Catalog) Skipped() int { return c.skipped }

// Current returns the record at the cursor without advancing.
func (c *Catalog) Current() core.PlanetRecord {
	return c.records[c.cursor]
}

// Next advances the cursor, wrapping at the end, and returns the new
// current record.
func (c *Catalog) Next() core.PlanetRecord {
	c.cursor = (c.cursor + 1) % len(c.records)
	return c.records[c.cursor]
}

// Shuffle randomizes record order and rewinds the cursor.
func (c *Catalog) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(c.records), func(i, j int) {
		c.records[i], c.records[j] = c.records[j], c.records[i]
	})
	c.cursor = 0
}
