package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/pkg/resource"
)

func TestResourceCredentialsGatewayRereadsProperties(t *testing.T) {
	gateway := NewResourceCredentialsGateway("app.openweather.api-key")

	require.NoError(t, resource.Load(strings.NewReader("app:\n  openweather:\n    api-key: first\n")))
	key, err := gateway.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "first", key)

	require.NoError(t, resource.Load(strings.NewReader("app:\n  openweather:\n    api-key: second\n")))
	key, err = gateway.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "second", key)
}

func TestResourceCredentialsGatewayMissingKey(t *testing.T) {
	require.NoError(t, resource.Load(strings.NewReader("app:\n  openweather:\n    api-key: \"  \"\n")))

	_, err := NewResourceCredentialsGateway("app.openweather.api-key").APIKey()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestStaticCredentials(t *testing.T) {
	key, err := StaticCredentials("abc").APIKey()
	require.NoError(t, err)
	assert.Equal(t, "abc", key)

	_, err = StaticCredentials("").APIKey()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
