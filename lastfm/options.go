package lastfm

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout            time.Duration
	httpClient         *http.Client
	baseURL            string
	userAgent          string
	minArtistListeners int
	minTrackListeners  int
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:   DefaultTimeout,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
}

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithBaseURL points the client at another endpoint, mostly for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithMinArtistListeners drops artists with fewer listeners from normalized
// artist lists. Zero disables the filter.
func WithMinArtistListeners(n int) Option {
	return func(o *clientOptions) {
		if n >= 0 {
			o.minArtistListeners = n
		}
	}
}

// WithMinTrackListeners drops tracks with fewer listeners from normalized
// track lists. Zero disables the filter.
func WithMinTrackListeners(n int) Option {
	return func(o *clientOptions) {
		if n >= 0 {
			o.minTrackListeners = n
		}
	}
}
