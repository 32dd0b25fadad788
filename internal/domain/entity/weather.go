package entity

import "time"

// CommonWeatherModel is the display model produced by one successful fetch.
type CommonWeatherModel struct {
	Temperature *float64     `json:"temperature,omitempty"` // °C
	Icon        WeatherGroup `json:"group"`
	Description *string      `json:"description,omitempty"`
	CityName    *string      `json:"cityName,omitempty"`
}

// SearchState is what is remembered between searches.
type SearchState struct {
	LastSearchedCity string    `json:"lastSearchedCity"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}
