package config

import (
	"errors"
	"strings"

	"go-weather/pkg/resource"
)

// ErrMissingAPIKey is returned when no OpenWeatherMap API key is configured.
var ErrMissingAPIKey = errors.New("no api key configured for OpenWeatherMap")

// CredentialsGateway supplies the OpenWeatherMap API key.
type CredentialsGateway interface {
	// APIKey returns the current key or ErrMissingAPIKey.
	APIKey() (string, error)
}

type resourceCredentialsGateway struct {
	propertyKey string
}

// NewResourceCredentialsGateway reads the key from application properties on every call.
func NewResourceCredentialsGateway(propertyKey string) CredentialsGateway {
	return &resourceCredentialsGateway{propertyKey: propertyKey}
}

func (g *resourceCredentialsGateway) APIKey() (string, error) {
	key := strings.TrimSpace(resource.GetString(g.propertyKey))
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// StaticCredentials is a fixed API key.
type StaticCredentials string

func (s StaticCredentials) APIKey() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", ErrMissingAPIKey
	}
	return string(s), nil
}
