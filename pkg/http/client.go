package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidURL is returned when the request URL cannot be built from the base URL, path and query.
var ErrInvalidURL = errors.New("invalid request url")

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL         string
	client          *http.Client
	defaultHeaders  map[string]string
	logger          HTTPLogger
	sensitiveParams map[string]struct{}
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	// ReadTimeout bounds the whole exchange. Zero leaves it to the transport.
	ReadTimeout time.Duration
	// Logger receives request and response events. Nil disables logging.
	Logger HTTPLogger
	// SensitiveQueryParams are masked in the URL handed to Logger.
	SensitiveQueryParams []string
}

// Response is the raw outcome of an exchange that reached the server.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	sensitive := make(map[string]struct{}, len(opts.SensitiveQueryParams))
	for _, name := range opts.SensitiveQueryParams {
		sensitive[name] = struct{}{}
	}

	return &Client{
		baseURL:         baseURL,
		client:          client,
		defaultHeaders:  opts.DefaultHeaders,
		logger:          opts.Logger,
		sensitiveParams: sensitive,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// BuildURL joins the base URL and path and encodes queryParams.
// Errors wrap ErrInvalidURL.
func (hc *Client) BuildURL(path string, queryParams map[string]string) (*url.URL, error) {
	raw := joinURL(hc.baseURL, path)

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no scheme or host", ErrInvalidURL, raw)
	}

	if len(queryParams) > 0 {
		query := u.Query()
		for key, value := range queryParams {
			query.Set(key, value)
		}
		u.RawQuery = query.Encode()
	}

	return u, nil
}

// doRequest builds the URL, executes exactly one exchange and reads the whole body.
// Transport errors are returned unchanged. Status codes are not interpreted.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string) (*Response, error) {
	u, err := hc.BuildURL(path, queryParams)
	if err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	loggedURL := hc.maskURL(u)
	loggedHeaders := flattenHeaders(req.Header)
	if hc.logger != nil {
		hc.logger.LogRequest(method, loggedURL, loggedHeaders, "")
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, loggedURL, loggedHeaders, "", 0, "", time.Since(start).Milliseconds(), err)
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, loggedURL, loggedHeaders, "", resp.StatusCode, "", latency, err)
		}
		return nil, err
	}

	if hc.logger != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			hc.logger.LogResponseSuccess(method, loggedURL, loggedHeaders, "", resp.StatusCode, string(bodyBytes), latency)
		} else {
			hc.logger.LogResponseError(method, loggedURL, loggedHeaders, "", resp.StatusCode, string(bodyBytes), latency,
				fmt.Errorf("http error: status %d", resp.StatusCode))
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       bodyBytes,
	}, nil
}

// maskURL hides sensitive query values before the URL is logged
func (hc *Client) maskURL(u *url.URL) string {
	if len(hc.sensitiveParams) == 0 || u.RawQuery == "" {
		return u.String()
	}

	masked := *u
	query := masked.Query()
	for name := range hc.sensitiveParams {
		if query.Has(name) {
			query.Set(name, "****")
		}
	}
	masked.RawQuery = query.Encode()
	return masked.String()
}

// joinURL combines baseURL and path with exactly one "/" between them
func joinURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return baseURL
	}
	return baseURL + "/" + path
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key, values := range header {
		if len(values) > 0 {
			flat[key] = values[0]
		}
	}
	return flat
}
