package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	requests  []string
	successes []int
	failures  []int
}

func (r *recordingLogger) LogRequest(method, url string, headers map[string]string, body string) {
	r.requests = append(r.requests, url)
}

func (r *recordingLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	r.successes = append(r.successes, httpStatus)
}

func (r *recordingLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	r.failures = append(r.failures, httpStatus)
}

func TestBuildURL(t *testing.T) {
	client := NewHttpClient("https://api.openweathermap.org/data/2.5/", ClientOptions{})

	u, err := client.BuildURL("weather", map[string]string{"q": "Saint Malo", "units": "metric"})
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "api.openweathermap.org", u.Host)
	assert.Equal(t, "/data/2.5/weather", u.Path)
	assert.Equal(t, "q=Saint+Malo&units=metric", u.RawQuery)
}

func TestBuildURLInvalid(t *testing.T) {
	for _, base := range []string{"://broken", "no-scheme-here", "http://%zz"} {
		client := NewHttpClient(base, ClientOptions{})
		_, err := client.BuildURL("weather", nil)
		assert.ErrorIs(t, err, ErrInvalidURL, base)
	}
}

func TestExecuteReturnsBodyWhateverTheStatus(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "go-weather", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{
		DefaultHeaders: map[string]string{"User-Agent": "go-weather"},
		Logger:         logger,
	})

	resp, err := client.Request().
		WithContext(context.Background()).
		WithPath("/weather").
		WithQueryParams(map[string]string{"q": "Paris"}).
		Execute()
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"cod":"404","message":"city not found"}`, string(resp.Body))
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
	assert.Equal(t, []int{http.StatusNotFound}, logger.failures)
	assert.Empty(t, logger.successes)
}

func TestExecuteMasksSensitiveParamsInLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("APPID"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{
		Logger:               logger,
		SensitiveQueryParams: []string{"APPID"},
	})

	_, err := client.Request().
		WithPath("weather").
		WithQueryParams(map[string]string{"APPID": "secret", "q": "Paris"}).
		Execute()
	require.NoError(t, err)

	require.Len(t, logger.requests, 1)
	logged, err := url.Parse(logger.requests[0])
	require.NoError(t, err)
	assert.Equal(t, "****", logged.Query().Get("APPID"))
	assert.Equal(t, []int{http.StatusOK}, logger.successes)
}

func TestExecuteTransportErrorIsReturnedUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewHttpClient(serverURL, ClientOptions{})
	_, err := client.Request().WithContext(context.Background()).WithPath("weather").Execute()
	require.Error(t, err)

	var urlErr *url.Error
	assert.True(t, errors.As(err, &urlErr))
	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr))
	assert.NotErrorIs(t, err, ErrInvalidURL)
}

func TestExecuteRequiresPath(t *testing.T) {
	client := NewHttpClient("http://localhost", ClientOptions{})
	_, err := client.Request().WithPath("").Execute()
	assert.EqualError(t, err, "path is required")
}
