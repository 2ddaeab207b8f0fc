package lastfm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Last.fm 2.0 REST endpoint
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"
	// DefaultUserAgent is sent when WithUserAgent is not used
	DefaultUserAgent = "lfm/dev"
	// DefaultTimeout bounds every request
	DefaultTimeout = 30 * time.Second
)

// Client is a Last.fm API client. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	apiKey             string
	baseURL            string
	userAgent          string
	minArtistListeners int
	minTrackListeners  int
	httpClient         *http.Client
	logger             zerolog.Logger
}

// NewClient creates a new Last.fm client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if _, err := url.Parse(options.baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
		}
	}

	return &Client{
		apiKey:             apiKey,
		baseURL:            options.baseURL,
		userAgent:          options.userAgent,
		minArtistListeners: options.minArtistListeners,
		minTrackListeners:  options.minTrackListeners,
		httpClient:         httpClient,
		logger:             logger,
	}, nil
}

// send performs one API call and returns the payload nested under the
// method's result field.
func (c *Client) send(ctx context.Context, method Method, params url.Values) (json.RawMessage, error) {
	if _, ok := methods[method]; !ok {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, method)
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("method", string(method))
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	if method.Autocorrect() {
		query.Set("autocorrect", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("method", string(method)).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Last.fm API request")

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			c.logger.Warn().Str("method", string(method)).Int("status", resp.StatusCode).Msg("Last.fm returned an error status")
		}
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if raw, ok := envelope["error"]; ok {
		apiErr := &APIError{Method: method}
		var code Number
		if err := json.Unmarshal(raw, &code); err == nil {
			apiErr.Code = code.Int()
		}
		if msg, ok := envelope["message"]; ok {
			_ = json.Unmarshal(msg, &apiErr.Message)
		}
		return nil, apiErr
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Str("method", string(method)).Int("status", resp.StatusCode).Msg("Last.fm returned an error status")
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", http.StatusText(resp.StatusCode))}
	}

	field := method.ResultField()
	payload, ok := envelope[field]
	if !ok || len(bytes.TrimSpace(payload)) == 0 {
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: missing %q", ErrUnexpectedResponse, field)}
	}

	return payload, nil
}

// call dispatches method and decodes the payload into v.
func (c *Client) call(ctx context.Context, method Method, params url.Values, v any) error {
	payload, err := c.send(ctx, method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return &TransportError{Method: method, StatusCode: http.StatusOK, Err: fmt.Errorf("failed to parse %s payload: %w", method.ResultField(), err)}
	}
	return nil
}

// TestConnection checks that the API is reachable and accepts the key
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.send(ctx, MethodChartTopTags, url.Values{"limit": {"1"}})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsInvalidAPIKey() {
			return fmt.Errorf("API key rejected: %w", err)
		}
		return err
	}

	c.logger.Debug().Msg("Successfully connected to Last.fm")
	return nil
}

// IsMBID reports whether s is a MusicBrainz identifier rather than a name.
func IsMBID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// fetch decodes a payload that is returned in the API's own shape.
func fetch[T any](ctx context.Context, c *Client, method Method, params url.Values) (*T, error) {
	var out T
	if err := c.call(ctx, method, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
