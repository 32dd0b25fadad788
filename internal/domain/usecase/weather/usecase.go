package weather

import (
	"context"
	"errors"
	"time"

	"go-weather/internal/domain/entity"
)

// ErrUnknownLocation is returned when no city is given and none was searched before.
var ErrUnknownLocation = errors.New("no city given and no previous search")

// Result is a fetched weather and the moment it was fetched
type Result struct {
	Weather   *entity.CommonWeatherModel
	UpdatedAt time.Time
}

type UseCase interface {
	// FetchWeather fetches the current weather for cityName, or for the last searched city when cityName is blank,
	// and remembers the search on success
	FetchWeather(ctx context.Context, cityName string) (*Result, error)

	// FindLastSearch returns the remembered search, or nil when there is none
	FindLastSearch(ctx context.Context) (*entity.SearchState, error)
}
