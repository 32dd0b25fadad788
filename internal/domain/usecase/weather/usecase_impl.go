package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/state"
	"go-weather/pkg/log"
)

type weatherUseCase struct {
	apiGateway   api.WeatherGateway
	stateGateway state.SearchStateGateway
	now          func() time.Time
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, stateGateway state.SearchStateGateway) UseCase {
	return &weatherUseCase{
		apiGateway:   apiGateway,
		stateGateway: stateGateway,
		now:          time.Now,
	}
}

// FetchWeather resolves the city, calls the weather gateway once and records the search
func (uc *weatherUseCase) FetchWeather(ctx context.Context, cityName string) (*Result, error) {
	city, err := uc.resolveCity(ctx, cityName)
	if err != nil {
		return nil, err
	}

	weather, err := uc.apiGateway.FetchDailyWeather(ctx, city)
	if err != nil {
		log.Warn("Fail to fetch weather",
			zap.String("city", city),
			zap.Stringer("kind", api.KindOf(err)),
			zap.Error(err))
		return nil, err
	}

	updatedAt := uc.now()
	uc.recordSearch(ctx, city, weather, updatedAt)

	log.Info("Weather fetched",
		zap.String("city", city),
		zap.Stringer("group", weather.Icon))

	return &Result{Weather: weather, UpdatedAt: updatedAt}, nil
}

// resolveCity trims cityName and falls back to the last searched city
func (uc *weatherUseCase) resolveCity(ctx context.Context, cityName string) (string, error) {
	city := strings.TrimSpace(cityName)
	if city != "" {
		return city, nil
	}

	last, err := uc.stateGateway.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load last searched city: %w", err)
	}
	if last == nil || strings.TrimSpace(last.LastSearchedCity) == "" {
		return "", ErrUnknownLocation
	}
	return last.LastSearchedCity, nil
}

// recordSearch saves the city name returned by the server, or the queried one when absent.
// A failing store never fails the fetch.
func (uc *weatherUseCase) recordSearch(ctx context.Context, queried string, weather *entity.CommonWeatherModel, updatedAt time.Time) {
	city := queried
	if weather.CityName != nil {
		city = *weather.CityName
	}

	err := uc.stateGateway.Save(ctx, entity.SearchState{
		LastSearchedCity: city,
		LastUpdatedAt:    updatedAt,
	})
	if err != nil {
		log.Warn("Fail to record last search", zap.String("city", city), zap.Error(err))
	}
}

// FindLastSearch returns the remembered search
func (uc *weatherUseCase) FindLastSearch(ctx context.Context) (*entity.SearchState, error) {
	last, err := uc.stateGateway.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load last search: %w", err)
	}
	return last, nil
}
