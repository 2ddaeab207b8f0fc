package lastfm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers each request with the body registered for its method
// query parameter and counts the requests it saw.
type fakeAPI struct {
	*httptest.Server
	bodies map[Method]string
	calls  atomic.Int32
	last   atomic.Pointer[http.Request]
}

func newFakeAPI(t *testing.T, bodies map[Method]string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{bodies: bodies}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.last.Store(r)

		body, ok := f.bodies[Method(r.URL.Query().Get("method"))]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":3,"message":"Invalid Method - No method with that name in this package"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)
	return f
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient("test-key", zerolog.Nop(), append([]Option{WithBaseURL(baseURL)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{name: "valid key", apiKey: "test-key"},
		{name: "missing key", apiKey: "", wantErr: true},
		{name: "blank key", apiKey: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), "API key is required")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultBaseURL, client.baseURL)
			assert.Equal(t, DefaultUserAgent, client.userAgent)
			assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
			assert.Zero(t, client.minArtistListeners)
			assert.Zero(t, client.minTrackListeners)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithUserAgent("lfm-test/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "lfm-test/1.0", client.userAgent)
	})

	t.Run("with listener thresholds", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithMinArtistListeners(1000), WithMinTrackListeners(50))
		require.NoError(t, err)
		assert.Equal(t, 1000, client.minArtistListeners)
		assert.Equal(t, 50, client.minTrackListeners)
	})

	t.Run("negative thresholds are ignored", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithMinArtistListeners(-1))
		require.NoError(t, err)
		assert.Zero(t, client.minArtistListeners)
	})
}

func TestSend(t *testing.T) {
	t.Run("builds the query and returns the result field", func(t *testing.T) {
		api := newFakeAPI(t, map[Method]string{
			MethodArtistInfo: `{"artist":{"name":"Cher"}}`,
		})
		client := newTestClient(t, api.URL, WithUserAgent("lfm-test/1.0"))

		payload, err := client.send(context.Background(), MethodArtistInfo, map[string][]string{"artist": {"Cher"}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Cher"}`, string(payload))

		req := api.last.Load()
		q := req.URL.Query()
		assert.Equal(t, "artist.getInfo", q.Get("method"))
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "1", q.Get("autocorrect"))
		assert.Equal(t, "Cher", q.Get("artist"))
		assert.Equal(t, "lfm-test/1.0", req.Header.Get("User-Agent"))
	})

	t.Run("omits autocorrect for search", func(t *testing.T) {
		api := newFakeAPI(t, map[Method]string{
			MethodArtistSearch: `{"results":{}}`,
		})
		client := newTestClient(t, api.URL)

		_, err := client.send(context.Background(), MethodArtistSearch, nil)
		require.NoError(t, err)
		assert.False(t, api.last.Load().URL.Query().Has("autocorrect"))
	})

	t.Run("api error in body", func(t *testing.T) {
		api := newFakeAPI(t, map[Method]string{
			MethodArtistInfo: `{"error":6,"message":"The artist you supplied could not be found","links":[]}`,
		})
		client := newTestClient(t, api.URL)

		_, err := client.send(context.Background(), MethodArtistInfo, nil)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, CodeInvalidParameters, apiErr.Code)
		assert.Equal(t, "The artist you supplied could not be found", apiErr.Message)
		assert.True(t, apiErr.IsNotFound())
		assert.Equal(t, MethodArtistInfo, apiErr.Method)
	})

	t.Run("api error with non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":10,"message":"Invalid API key - You must be granted a valid key by last.fm"}`))
		}))
		defer server.Close()
		client := newTestClient(t, server.URL)

		_, err := client.send(context.Background(), MethodArtistInfo, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsInvalidAPIKey())
	})

	t.Run("non-json body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>maintenance</html>"))
		}))
		defer server.Close()
		client := newTestClient(t, server.URL)

		_, err := client.send(context.Background(), MethodArtistInfo, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusOK, transportErr.StatusCode)
	})

	t.Run("non-200 without error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()
		client := newTestClient(t, server.URL)

		_, err := client.send(context.Background(), MethodArtistInfo, nil)
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
	})

	t.Run("missing result field", func(t *testing.T) {
		api := newFakeAPI(t, map[Method]string{
			MethodArtistInfo: `{"album":{}}`,
		})
		client := newTestClient(t, api.URL)

		_, err := client.send(context.Background(), MethodArtistInfo, nil)
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})

	t.Run("timeout surfaces as transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()
		client := newTestClient(t, server.URL)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.send(ctx, MethodArtistInfo, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("unknown method", func(t *testing.T) {
		client := newTestClient(t, "http://127.0.0.1:0")
		_, err := client.send(context.Background(), Method("user.getInfo"), nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestTestConnection(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newFakeAPI(t, map[Method]string{
			MethodChartTopTags: `{"tags":{"tag":[{"name":"rock"}]}}`,
		})
		client := newTestClient(t, api.URL)

		require.NoError(t, client.TestConnection(context.Background()))
		assert.Equal(t, "1", api.last.Load().URL.Query().Get("limit"))
	})

	t.Run("rejected key", func(t *testing.T) {
		api := newFakeAPI(t, map[Method]string{
			MethodChartTopTags: `{"error":10,"message":"Invalid API key"}`,
		})
		client := newTestClient(t, api.URL)

		err := client.TestConnection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key rejected")
	})
}

func TestIsMBID(t *testing.T) {
	assert.True(t, IsMBID("bfcc6d75-a6a5-4bc6-8282-47aec8531818"))
	assert.False(t, IsMBID("Cher"))
	assert.False(t, IsMBID(""))
	assert.False(t, IsMBID("urn:uuid:bfcc6d75-a6a5-4bc6-8282-47aec8531818"))
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		code      int
		notFound  bool
		badKey    bool
		limited   bool
		temporary bool
	}{
		{code: CodeInvalidParameters, notFound: true},
		{code: CodeInvalidAPIKey, badKey: true},
		{code: CodeSuspendedAPIKey, badKey: true},
		{code: CodeRateLimited, limited: true, temporary: true},
		{code: CodeServiceOffline, temporary: true},
		{code: CodeTemporaryError, temporary: true},
		{code: CodeInvalidMethod},
	}

	for _, tt := range tests {
		err := &APIError{Code: tt.code}
		assert.Equal(t, tt.notFound, err.IsNotFound(), "code %d", tt.code)
		assert.Equal(t, tt.badKey, err.IsInvalidAPIKey(), "code %d", tt.code)
		assert.Equal(t, tt.limited, err.IsRateLimited(), "code %d", tt.code)
		assert.Equal(t, tt.temporary, err.IsTemporary(), "code %d", tt.code)
	}
}
