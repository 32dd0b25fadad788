package msg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogue = `
app:
  start: "Starting {0}"
error:
  unknown-city: "Unknown city"
  fetch: "Fetch of {0} failed after {1}ms"
`

func TestGetMessage(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(catalogue)))

	assert.Equal(t, "Unknown city", GetMessage("error.unknown-city"))
	assert.Equal(t, "Starting go-weather", GetMessage("app.start", "go-weather"))
	assert.Equal(t, "Fetch of Paris failed after 42ms", GetMessage("error.fetch", "Paris", 42))
	assert.Equal(t, "Message not found: error.missing", GetMessage("error.missing"))
}

func TestGetMessageNonPrimitiveArgument(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(catalogue)))

	got := GetMessage("app.start", map[string]int{"a": 1})
	assert.Equal(t, `Starting {"a":1}`, got)
}

func TestInitMissingFile(t *testing.T) {
	err := Init("does/not/exist.yml")
	assert.Error(t, err)
}
