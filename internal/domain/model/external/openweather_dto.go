package external

// CurrentWeatherResponse represents the response from the OpenWeatherMap current weather API.
// Only the fields the weather gateway reads are declared.
type CurrentWeatherResponse struct {
	Name    string                `json:"name"`
	Main    *MainWeatherDTO       `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// MainWeatherDTO holds the measured values
type MainWeatherDTO struct {
	Temp *float64 `json:"temp"`
}

// WeatherConditionDTO represents a single weather condition
type WeatherConditionDTO struct {
	ID   int    `json:"id"`
	Main string `json:"main"`
}
