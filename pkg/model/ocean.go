// Mock ocean conditions. Every value is a linear function of the coordinates;
// nothing here is measured data.

package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date"`
}

type DepthProfile struct {
	Surface   float64 `json:"surface"`
	Depth100m float64 `json:"depth_100m"`
	Depth500m float64 `json:"depth_500m"`
}

type Plankton struct {
	ChlorophyllA         float64 `json:"chlorophyll_a"`
	PhytoplanktonBiomass float64 `json:"phytoplankton_biomass"`
	ZooplanktonBiomass   float64 `json:"zooplankton_biomass"`
}

type WaterQuality struct {
	PH              float64 `json:"ph"`
	DissolvedOxygen float64 `json:"dissolved_oxygen"`
	Turbidity       float64 `json:"turbidity"`
}

type OceanCurrents struct {
	SurfaceSpeed     float64 `json:"surface_speed"`
	SurfaceDirection float64 `json:"surface_direction"`
	DeepCurrentSpeed float64 `json:"deep_current_speed"`
}

type WaveData struct {
	Height    float64 `json:"height"`
	Period    float64 `json:"period"`
	Direction float64 `json:"direction"`
}

type Bathymetry struct {
	Depth        float64 `json:"depth"`
	SeafloorType string  `json:"seafloor_type"`
}

type OceanData struct {
	Coordinates   Coordinates   `json:"coordinates"`
	Temperature   DepthProfile  `json:"temperature"`
	Salinity      DepthProfile  `json:"salinity"`
	Plankton      Plankton      `json:"plankton"`
	WaterQuality  WaterQuality  `json:"water_quality"`
	OceanCurrents OceanCurrents `json:"ocean_currents"`
	WaveData      WaveData      `json:"wave_data"`
	Bathymetry    Bathymetry    `json:"bathymetry"`
}

// ParseCoordinate parses a lat/lon query value, ignoring surrounding
// whitespace. NaN and infinities are rejected, they cannot be encoded as JSON.
func ParseCoordinate(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q: not a finite number", name, raw)
	}
	return v, nil
}

// round to n decimals, ties to even
func round(x float64, n int) float64 {
	p := math.Pow10(n)
	return math.RoundToEven(x*p) / p
}

func GetOceanData(lat, lon float64, date string) *OceanData {

	seafloor := "Continental slope"
	if lat > 30 {
		seafloor = "Abyssal plain"
	}

	return &OceanData{
		Coordinates: Coordinates{Latitude: lat, Longitude: lon, Date: date},
		Temperature: DepthProfile{
			Surface:   round(20+(lat*0.1)+(lon*0.05), 1),
			Depth100m: round(15+(lat*0.08)+(lon*0.03), 1),
			Depth500m: round(8+(lat*0.05)+(lon*0.02), 1),
		},
		Salinity: DepthProfile{
			Surface:   round(35.0+(lat*0.01), 2),
			Depth100m: round(35.2+(lat*0.008), 2),
			Depth500m: round(34.8+(lat*0.005), 2),
		},
		Plankton: Plankton{
			ChlorophyllA:         round(0.5+(lat*0.01), 3),
			PhytoplanktonBiomass: round(100+(lat*2), 1),
			ZooplanktonBiomass:   round(50+(lat*1.5), 1),
		},
		WaterQuality: WaterQuality{
			PH:              round(7.8+(lat*0.001), 2),
			DissolvedOxygen: round(6.5+(lat*0.01), 1),
			Turbidity:       round(0.3+(lat*0.005), 2),
		},
		OceanCurrents: OceanCurrents{
			SurfaceSpeed:     round(0.5+(lat*0.01), 2),
			SurfaceDirection: round(180+(lon*0.5), 1),
			DeepCurrentSpeed: round(0.2+(lat*0.005), 2),
		},
		WaveData: WaveData{
			Height:    round(1.0+(lat*0.02), 1),
			Period:    round(8.0+(lat*0.1), 1),
			Direction: round(270+(lon*0.3), 1),
		},
		Bathymetry: Bathymetry{
			Depth:        round(2000+(lat*50), 0),
			SeafloorType: seafloor,
		},
	}
}
