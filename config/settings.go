package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Settings struct {
	Viewer    ViewerSettings    `json:"viewer"`
	Dataset   DatasetSettings   `json:"dataset"`
	Telemetry TelemetrySettings `json:"telemetry"`
}

type ViewerSettings struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	SphereSegments int     `json:"sphereSegments"`
	SphereRings    int     `json:"sphereRings"`
	PlanetSpinRate float64 `json:"planetSpinRate"` // radians per second
}

type DatasetSettings struct {
	Path           string  `json:"path"`
	AutoAdvanceSec float64 `json:"autoAdvanceSec"`
	ShuffleOnLoad  bool    `json:"shuffleOnLoad"`
}

type TelemetrySettings struct {
	Enabled          bool `json:"enabled"`
	Port             int  `json:"port"`
	UpdateIntervalMs int  `json:"updateIntervalMs"`
}

var globalSettings Settings

// Load populates the global settings with defaults, then overlays
// settings.json from the working directory if present.
func Load() error {
	globalSettings = Settings{
		Viewer: ViewerSettings{
			Width:          1280,
			Height:         720,
			SphereSegments: 32,
			SphereRings:    24,
			PlanetSpinRate: 0.5,
		},
		Dataset: DatasetSettings{
			Path:           "data/catalog.csv",
			AutoAdvanceSec: 15,
			ShuffleOnLoad:  true,
		},
		Telemetry: TelemetrySettings{
			Enabled:          false,
			Port:             8080,
			UpdateIntervalMs: 500,
		},
	}

	file, err := os.Open("settings.json")
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No settings.json found, using defaults")
			return nil
		}
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&globalSettings); err != nil {
		return fmt.Errorf("error parsing settings.json: %v", err)
	}

	return nil
}

// Get returns the loaded settings. Call Load first; an unloaded Get
// returns zero values.
func Get() Settings {
	return globalSettings
}
