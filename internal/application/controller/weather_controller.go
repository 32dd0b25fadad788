package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.FindWeather)
	controller.api.GET("/weather/last", controller.FindLastSearch)
}

// FindWeather returns the current weather of the city query parameter.
// Without a city the last searched one is used.
func (controller *WeatherController) FindWeather(c echo.Context) error {
	result, err := controller.useCase.FetchWeather(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		status, body := errorResponse(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, model.NewWeatherResponseDTO(result.Weather, result.UpdatedAt))
}

// FindLastSearch returns the last searched city and when its weather was updated
func (controller *WeatherController) FindLastSearch(c echo.Context) error {
	last, err := controller.useCase.FindLastSearch(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponseDTO{
			Title:   msg.GetMessage("common.error"),
			Message: msg.GetMessage("error.no-info"),
		})
	}
	if last == nil {
		return c.JSON(http.StatusNotFound, model.ErrorResponseDTO{
			Title:   msg.GetMessage("common.error"),
			Message: msg.GetMessage("weather.no-last-search"),
		})
	}
	return c.JSON(http.StatusOK, last)
}

// errorResponse maps a fetch error to the status and the alert shown to the user
func errorResponse(err error) (int, model.ErrorResponseDTO) {
	if errors.Is(err, weather.ErrUnknownLocation) {
		return http.StatusBadRequest, model.ErrorResponseDTO{
			Title:   msg.GetMessage("common.error"),
			Message: msg.GetMessage("error.unknown-location"),
		}
	}

	status, titleKey := http.StatusInternalServerError, "common.error"
	switch api.KindOf(err) {
	case api.KindBadURL, api.KindConfiguration:
		status = http.StatusInternalServerError
	case api.KindNoData:
		status, titleKey = http.StatusBadGateway, "error.no-data"
	case api.KindJSONParsing:
		status, titleKey = http.StatusNotFound, "error.unknown-city"
	case api.KindTransport, api.KindDecode:
		status = http.StatusBadGateway
	}

	return status, model.ErrorResponseDTO{
		Title:   msg.GetMessage(titleKey),
		Message: msg.GetMessage("error.no-info"),
	}
}
