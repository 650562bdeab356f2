package forecast

import "strings"

// Coordinates is a reference point for a region, a representative city.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

const defaultRegion = "france"

// One representative city per supported region label.
var regionCoordinates = map[string]Coordinates{
	"nord":      {Latitude: 50.6292, Longitude: 3.0573},  // Lille
	"ouest":     {Latitude: 47.2184, Longitude: -1.5536}, // Nantes
	"est":       {Latitude: 48.5734, Longitude: 7.7521},  // Strasbourg
	"sud-ouest": {Latitude: 43.6047, Longitude: 1.4442},  // Toulouse
	"sud-est":   {Latitude: 43.2965, Longitude: 5.3698},  // Marseille
	"montagne":  {Latitude: 45.1885, Longitude: 5.7245},  // Grenoble
	"france":    {Latitude: 48.8566, Longitude: 2.3522},  // Paris
}

// Locate maps a region label to its reference coordinates. Total over all
// strings: anything unrecognized resolves to the France entry.
func Locate(region string) Coordinates {
	key := strings.ToLower(strings.TrimSpace(region))
	if coords, ok := regionCoordinates[key]; ok {
		return coords
	}
	return regionCoordinates[defaultRegion]
}
