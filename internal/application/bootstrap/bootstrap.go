package bootstrap

import (
	"fmt"
	"strings"

	"go-weather/configs"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/config"
	"go-weather/internal/domain/gateway/state"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

const apiKeyProperty = "app.openweather.api-key"

// LoadConfig reads properties and messages and applies the log level
func LoadConfig(env *configs.EnvConfig) error {
	if err := resource.Init(env.PropertiesFilePath); err != nil {
		return err
	}
	if err := msg.Init(env.MessagesFilePath); err != nil {
		return err
	}
	log.SetApplicationName(env.ApplicationName)
	if err := log.SetLevel(resource.GetStringOrDefault("app.log.level", "info")); err != nil {
		return fmt.Errorf("invalid app.log.level: %w", err)
	}
	return nil
}

// NewWeatherGateway builds the OpenWeatherMap gateway from app.openweather.* properties
func NewWeatherGateway(applicationName string) api.WeatherGateway {
	return api.NewWeatherGateway(
		resource.GetString("app.openweather.base-url"),
		config.NewResourceCredentialsGateway(apiKeyProperty),
		WeatherClientOptions(applicationName),
	)
}

// WeatherClientOptions are the outbound client settings. Redirects are followed like the platform default.
func WeatherClientOptions(applicationName string) http.ClientOptions {
	return http.ClientOptions{
		FollowRedirect:    true,
		DefaultHeaders:    map[string]string{"User-Agent": applicationName},
		ConnectionTimeout: resource.GetDuration("app.openweather.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.openweather.read-timeout"),
		Logger:            http.NewZapLogger(),
	}
}

// NewSearchStateGateway builds the store selected by app.state.store. The returned func releases it.
func NewSearchStateGateway() (state.SearchStateGateway, func(), error) {
	switch store := strings.ToLower(resource.GetStringOrDefault("app.state.store", "memory")); store {
	case "memory":
		return state.NewMemorySearchStateGateway(), func() {}, nil
	case "redis":
		client, err := redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")).
			WithKeyPrefix(resource.GetString("app.redis.key-prefix")))
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Warnf("Fail to close redis client: %v", err)
			}
		}
		return state.NewRedisSearchStateGateway(client), closeClient, nil
	default:
		return nil, nil, fmt.Errorf("unknown app.state.store %q, expected memory or redis", store)
	}
}
