package models

// WeatherReading represents current conditions normalized from the
// OpenWeatherMap API. Built fresh on every invocation, never persisted.
type WeatherReading struct {
	Temperature   float64 `json:"temperature"` // Celsius
	TempMin       float64 `json:"temp_min"`    // Celsius
	TempMax       float64 `json:"temp_max"`    // Celsius
	WindSpeed     float64 `json:"wind_speed"`  // m/s
	ConditionCode int     `json:"condition_code"`
	Description   string  `json:"description"`
	Label         string  `json:"label"`
}
