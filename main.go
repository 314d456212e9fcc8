package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"exoviewer/config"
	"exoviewer/dataset"
	"exoviewer/rendering/opengl"
	"exoviewer/telemetry"
)

func main() {
	runtime.LockOSThread()

	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	settings := config.Get()

	// Command line flags override settings.json
	var (
		catalogPath = flag.String("catalog", settings.Dataset.Path, "Path to the transit catalog CSV")
		width       = flag.Int("width", settings.Viewer.Width, "Window width")
		height      = flag.Int("height", settings.Viewer.Height, "Window height")
		advance     = flag.Float64("advance", settings.Dataset.AutoAdvanceSec, "Seconds between automatic planet changes (0 disables)")
		telemetryOn = flag.Bool("telemetry", settings.Telemetry.Enabled, "Serve viewer status over WebSocket")
	)
	flag.Parse()

	fmt.Println("=== Exoplanet Orbit Viewer ===")
	fmt.Printf("Catalog: %s\n", *catalogPath)
	fmt.Printf("Window: %dx%d\n", *width, *height)

	catalog, err := dataset.Load(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if settings.Dataset.ShuffleOnLoad {
		catalog.Shuffle(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	fmt.Printf("Catalog: %d confirmed records (%d rows skipped)\n", catalog.Len(), catalog.Skipped())

	renderer, err := opengl.New(*width, *height,
		settings.Viewer.SphereSegments, settings.Viewer.SphereRings,
		settings.Viewer.PlanetSpinRate)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()

	var server *telemetry.Server
	if *telemetryOn {
		server = telemetry.NewServer()
		go server.Run(settings.Telemetry.Port, settings.Telemetry.UpdateIntervalMs)
	}

	countdown := *advance
	showNext := func(first bool) {
		rec := catalog.Current()
		if !first {
			rec = catalog.Next()
		}
		renderer.SetPlanet(rec)
		countdown = *advance
		fmt.Printf("Now showing %s %s (P=%.2f d, Rp=%.2f Re, Teff=%.0f K)\n",
			rec.Mission, rec.ObjectID, rec.PeriodDays, rec.RadiusEarth, rec.StarTeffK)
	}
	renderer.OnNext = func() { showNext(false) }
	showNext(true)

	fmt.Println("\nControls:")
	fmt.Println("  Mouse drag: Orbit the view")
	fmt.Println("  Scroll: Zoom in/out")
	fmt.Println("  Double-click or R: Reset view, resume auto-rotation")
	fmt.Println("  N or Space: Next planet")
	fmt.Println("  ESC: Exit")

	lastTime := time.Now()
	frameCount := 0
	lastFPSTime := time.Now()
	fps := 0.0

	for !renderer.ShouldClose() {
		renderer.PollEvents()

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if *advance > 0 {
			countdown -= dt
			if countdown <= 0 {
				showNext(false)
			}
		}

		frac := 0.0
		if *advance > 0 {
			frac = countdown / *advance
		}
		renderer.SetHUDStats(fps, frac)

		renderer.AdvanceFrame(dt)

		if server != nil {
			rec := renderer.Planet()
			server.Publish(telemetry.Status{
				Mission:    rec.Mission,
				ObjectID:   rec.ObjectID,
				PeriodDays: rec.PeriodDays,
				EqTempK:    rec.EqTempK,
				StarTeffK:  rec.StarTeffK,
				Elapsed:    renderer.Elapsed(),
				FPS:        fps,
			})
		}

		frameCount++
		if now.Sub(lastFPSTime).Seconds() >= 1.0 {
			fps = float64(frameCount) / now.Sub(lastFPSTime).Seconds()
			frameCount = 0
			lastFPSTime = now
		}
	}

	fmt.Println("\nShutting down...")
}
