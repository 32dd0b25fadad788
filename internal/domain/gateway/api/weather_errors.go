package api

import (
	"errors"
	"fmt"
)

// ErrorKind tells which step of a fetch failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindBadURL means the request URL could not be built. No request was sent.
	KindBadURL
	// KindNoData means the server answered with an empty body.
	KindNoData
	// KindJSONParsing means the body decoded but carried no weather condition.
	KindJSONParsing
	// KindConfiguration means the API key could not be obtained. No request was sent.
	KindConfiguration
	// KindTransport wraps the transport error unchanged.
	KindTransport
	// KindDecode wraps the JSON decoding error unchanged.
	KindDecode
)

var (
	ErrBadURL      = errors.New("bad url")
	ErrNoData      = errors.New("no data")
	ErrJSONParsing = errors.New("json parsing error")
)

var kindNames = map[ErrorKind]string{
	KindUnknown:       "unknown",
	KindBadURL:        "bad url",
	KindNoData:        "no data",
	KindJSONParsing:   "json parsing error",
	KindConfiguration: "configuration",
	KindTransport:     "transport",
	KindDecode:        "decode",
}

func (k ErrorKind) String() string {
	return kindNames[k]
}

// WeatherError is the single error type returned by WeatherGateway.
// Err is the lower layer cause, if any, and is reachable through errors.Is and errors.As.
type WeatherError struct {
	Kind ErrorKind
	Err  error
}

func newWeatherError(kind ErrorKind, cause error) *WeatherError {
	return &WeatherError{Kind: kind, Err: cause}
}

func (e *WeatherError) Error() string {
	if e.Err == nil {
		return "weather: " + e.Kind.String()
	}
	return fmt.Sprintf("weather: %s: %v", e.Kind, e.Err)
}

func (e *WeatherError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the named kinds.
func (e *WeatherError) Is(target error) bool {
	switch e.Kind {
	case KindBadURL:
		return target == ErrBadURL
	case KindNoData:
		return target == ErrNoData
	case KindJSONParsing:
		return target == ErrJSONParsing
	}
	return false
}

// KindOf returns the kind of a WeatherError found in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var weatherErr *WeatherError
	if errors.As(err, &weatherErr) {
		return weatherErr.Kind
	}
	return KindUnknown
}
