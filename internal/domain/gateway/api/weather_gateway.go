package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// WeatherGateway defines the interface for OpenWeatherMap calls
type WeatherGateway interface {
	// FetchDailyWeather fetches the current weather for cityName.
	// Exactly one of the returned values is non-nil. Errors are *WeatherError.
	FetchDailyWeather(ctx context.Context, cityName string) (*entity.CommonWeatherModel, error)
}
