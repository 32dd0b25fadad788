package model

import (
	"time"

	"go-weather/internal/domain/entity"
)

// WeatherResponseDTO is the body of a successful GET /weather
type WeatherResponseDTO struct {
	Temperature *float64            `json:"temperature"`
	Group       entity.WeatherGroup `json:"group"`
	Icon        string              `json:"icon"`
	Description *string             `json:"description"`
	CityName    *string             `json:"cityName"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// NewWeatherResponseDTO builds the response body from a fetched model
func NewWeatherResponseDTO(weather *entity.CommonWeatherModel, updatedAt time.Time) WeatherResponseDTO {
	return WeatherResponseDTO{
		Temperature: weather.Temperature,
		Group:       weather.Icon,
		Icon:        weather.Icon.Icon(),
		Description: weather.Description,
		CityName:    weather.CityName,
		UpdatedAt:   updatedAt,
	}
}

// ErrorResponseDTO is the body of every failed request, as shown to the user
type ErrorResponseDTO struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
