// Command catalogstat loads a transit catalog and prints summary
// statistics, useful for checking a new export before pointing the viewer
// at it.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"exoviewer/dataset"
)

func main() {
	path := flag.String("catalog", "data/catalog.csv", "Path to the transit catalog CSV")
	flag.Parse()

	catalog, err := dataset.Load(*path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	fmt.Printf("Catalog: %s\n", *path)
	fmt.Printf("Confirmed records: %d (%d rows skipped)\n", catalog.Len(), catalog.Skipped())

	minPeriod, maxPeriod := math.Inf(1), math.Inf(-1)
	minRadius, maxRadius := math.Inf(1), math.Inf(-1)
	minTeff, maxTeff := math.Inf(1), math.Inf(-1)
	missions := map[string]int{}

	for i := 0; i < catalog.Len(); i++ {
		rec := catalog.Current()
		missions[rec.Mission]++
		minPeriod = math.Min(minPeriod, rec.PeriodDays)
		maxPeriod = math.Max(maxPeriod, rec.PeriodDays)
		minRadius = math.Min(minRadius, rec.RadiusEarth)
		maxRadius = math.Max(maxRadius, rec.RadiusEarth)
		minTeff = math.Min(minTeff, rec.StarTeffK)
		maxTeff = math.Max(maxTeff, rec.StarTeffK)
		catalog.Next()
	}

	fmt.Printf("Period:      %.2f - %.2f days\n", minPeriod, maxPeriod)
	fmt.Printf("Radius:      %.2f - %.2f Earth radii\n", minRadius, maxRadius)
	fmt.Printf("Stellar Teff: %.0f - %.0f K\n", minTeff, maxTeff)
	for mission, n := range missions {
		fmt.Printf("  %s: %d\n", mission, n)
	}
}
