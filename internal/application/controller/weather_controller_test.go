package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../../configs/messages.yml"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeWeatherUseCase struct {
	city   string
	result *weather.Result
	err    error
	last   *entity.SearchState
}

func (f *fakeWeatherUseCase) FetchWeather(_ context.Context, cityName string) (*weather.Result, error) {
	f.city = cityName
	return f.result, f.err
}

func (f *fakeWeatherUseCase) FindLastSearch(context.Context) (*entity.SearchState, error) {
	return f.last, f.err
}

func serve(t *testing.T, useCase weather.UseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	NewWeatherController(e.Group("/go-weather"), useCase).InitWeatherRoutes()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestFindWeather(t *testing.T) {
	temperature, description, city := 21.5, "Clear sky", "Paris"
	updatedAt := time.Date(2026, 10, 14, 8, 15, 0, 0, time.UTC)
	useCase := &fakeWeatherUseCase{result: &weather.Result{
		Weather: &entity.CommonWeatherModel{
			Temperature: &temperature,
			Icon:        entity.GroupClear,
			Description: &description,
			CityName:    &city,
		},
		UpdatedAt: updatedAt,
	}}

	rec := serve(t, useCase, "/go-weather/weather?city=Paris")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Paris", useCase.city)
	assert.JSONEq(t, `{
		"temperature": 21.5,
		"group": "clear",
		"icon": "ic_sun",
		"description": "Clear sky",
		"cityName": "Paris",
		"updatedAt": "2026-10-14T08:15:00Z"
	}`, rec.Body.String())
}

func TestFindWeatherErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{"unknown city", &api.WeatherError{Kind: api.KindJSONParsing}, http.StatusNotFound, "Unknown city"},
		{"no data", &api.WeatherError{Kind: api.KindNoData}, http.StatusBadGateway, "No info found"},
		{"bad url", &api.WeatherError{Kind: api.KindBadURL}, http.StatusInternalServerError, "Error"},
		{"configuration", &api.WeatherError{Kind: api.KindConfiguration}, http.StatusInternalServerError, "Error"},
		{"transport", &api.WeatherError{Kind: api.KindTransport, Err: errors.New("reset")}, http.StatusBadGateway, "Error"},
		{"decode", &api.WeatherError{Kind: api.KindDecode, Err: errors.New("bad json")}, http.StatusBadGateway, "Error"},
		{"other", errors.New("store down"), http.StatusInternalServerError, "Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &fakeWeatherUseCase{err: tc.err}, "/go-weather/weather?city=Atlantis")

			assert.Equal(t, tc.status, rec.Code)
			var body model.ErrorResponseDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.title, body.Title)
			assert.Equal(t, "Can't update weather info", body.Message)
		})
	}
}

func TestFindWeatherWithoutCity(t *testing.T) {
	useCase := &fakeWeatherUseCase{err: weather.ErrUnknownLocation}

	rec := serve(t, useCase, "/go-weather/weather")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "", useCase.city)
	assert.JSONEq(t, `{"title":"Error","message":"Unknown location"}`, rec.Body.String())
}

func TestFindLastSearch(t *testing.T) {
	updatedAt := time.Date(2026, 10, 14, 8, 15, 0, 0, time.UTC)
	rec := serve(t, &fakeWeatherUseCase{last: &entity.SearchState{LastSearchedCity: "Paris", LastUpdatedAt: updatedAt}}, "/go-weather/weather/last")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"lastSearchedCity":"Paris","lastUpdatedAt":"2026-10-14T08:15:00Z"}`, rec.Body.String())
}

func TestFindLastSearchNone(t *testing.T) {
	rec := serve(t, &fakeWeatherUseCase{}, "/go-weather/weather/last")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"title":"Error","message":"No city searched yet"}`, rec.Body.String())
}

func TestFindLastSearchFailure(t *testing.T) {
	rec := serve(t, &fakeWeatherUseCase{err: errors.New("store down")}, "/go-weather/weather/last")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
