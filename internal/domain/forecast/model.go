package forecast

// Request captures the payload accepted by the forecast endpoint.
type Request struct {
	Region string `json:"region"`
}

// Summary is the 7-day reduction serialized back to API consumers. When OK is
// false the upstream data was unusable and only Region is meaningful.
type Summary struct {
	OK            bool     `json:"ok"`
	Region        string   `json:"region"`
	MinTemp7d     *float64 `json:"temp_min_7j,omitempty"`
	MaxTemp7d     *float64 `json:"temp_max_7j,omitempty"`
	TotalPrecip7d float64  `json:"pluie_totale_7j_mm"`
	MaxWind7d     *float64 `json:"vent_max_7j_kmh,omitempty"`
	FrostRisk     bool     `json:"risque_gel"`
	Advisory      string   `json:"conseil,omitempty"`
}

// DailySeries holds the raw daily arrays fetched from the forecast provider.
// Absent arrays stay nil so the reduction can tell "no data" from "all zero".
type DailySeries struct {
	Latitude      float64
	Longitude     float64
	TempMin       []float64
	TempMax       []float64
	Precipitation []float64
	WindMax       []float64
}
