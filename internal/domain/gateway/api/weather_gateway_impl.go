package api

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/config"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
)

const (
	weatherEndpoint = "weather"
	cityParam       = "q"
	unitsParam      = "units"
	keyParam        = "APPID"
	metricUnits     = "metric"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient  *http.Client
	credentials config.CredentialsGateway
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, credentials config.CredentialsGateway, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.SensitiveQueryParams = append(clientOptions.SensitiveQueryParams, keyParam)

	return &weatherGatewayImpl{
		httpClient:  http.NewHttpClient(baseUrl, clientOptions),
		credentials: credentials,
	}
}

// FetchDailyWeather sends one GET /weather and maps the answer into a CommonWeatherModel
func (w *weatherGatewayImpl) FetchDailyWeather(ctx context.Context, cityName string) (*entity.CommonWeatherModel, error) {
	apiKey, err := w.credentials.APIKey()
	if err != nil {
		return nil, newWeatherError(KindConfiguration, err)
	}

	resp, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(weatherEndpoint).
		WithQueryParams(map[string]string{
			cityParam:  cityName,
			unitsParam: metricUnits,
			keyParam:   apiKey,
		}).
		WithHeaders(map[string]string{"Accept": "application/json"}).
		Execute()

	if err != nil {
		if errors.Is(err, http.ErrInvalidURL) {
			return nil, newWeatherError(KindBadURL, err)
		}
		return nil, newWeatherError(KindTransport, err)
	}

	if len(resp.Body) == 0 {
		return nil, newWeatherError(KindNoData, nil)
	}

	var payload external.CurrentWeatherResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		log.Warn("Fail to decode weather response",
			zap.String("city", cityName),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return nil, newWeatherError(KindDecode, err)
	}

	if len(payload.Weather) == 0 {
		return nil, newWeatherError(KindJSONParsing, nil)
	}

	return toCommonWeatherModel(payload), nil
}

// toCommonWeatherModel converts a decoded response that has at least one condition
func toCommonWeatherModel(payload external.CurrentWeatherResponse) *entity.CommonWeatherModel {
	condition := payload.Weather[0]

	model := &entity.CommonWeatherModel{
		Icon:        entity.ClassifyCondition(condition.ID),
		Description: optionalString(condition.Main),
		CityName:    optionalString(payload.Name),
	}
	if payload.Main != nil && payload.Main.Temp != nil {
		temperature := *payload.Main.Temp
		model.Temperature = &temperature
	}

	return model
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
