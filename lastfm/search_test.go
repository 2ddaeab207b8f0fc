package lastfm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	artistSearchBody = `{"results":{
		"opensearch:totalResults":"40","opensearch:startIndex":"0","opensearch:itemsPerPage":"10",
		"artistmatches":{"artist":[
			{"name":"Believe Collective","listeners":"500"},
			{"name":"Cher","listeners":"9000"}
		]}}}`
	trackSearchBody = `{"results":{
		"opensearch:totalResults":"25","opensearch:startIndex":"0","opensearch:itemsPerPage":"10",
		"trackmatches":{"track":[
			{"name":"Believe","artist":"Cher","listeners":"1200"},
			{"name":"believe","artist":"Justin Bieber","listeners":"800"}
		]}}}`
	albumSearchBody = `{"results":{
		"opensearch:totalResults":"5","opensearch:startIndex":"0","opensearch:itemsPerPage":"10",
		"albummatches":{"album":[{"name":"Believe","artist":"Cher"}]}}}`
)

func TestSearch(t *testing.T) {
	api := newFakeAPI(t, map[Method]string{
		MethodArtistSearch: artistSearchBody,
		MethodTrackSearch:  trackSearchBody,
		MethodAlbumSearch:  albumSearchBody,
	})
	client := newTestClient(t, api.URL)

	result, err := client.Search(context.Background(), SearchParams{Query: "BELIEVE", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int32(3), api.calls.Load())
	assert.Equal(t, Meta{Query: "BELIEVE", Page: 1, PerPage: 30, Total: 70, TotalPages: 4}, result.Meta)
	assert.Len(t, result.Result.Artists, 2)
	assert.Len(t, result.Result.Tracks, 2)
	assert.Len(t, result.Result.Albums, 1)

	require.NotNil(t, result.Result.Top)
	top, ok := result.Result.Top.(Track)
	require.True(t, ok, "exact match wins over higher listener artist")
	assert.Equal(t, "Believe", top.Name)
	assert.Equal(t, "Cher", top.ArtistName)
}

func TestSearchRunsConcurrently(t *testing.T) {
	// Each sub-search blocks until all three have arrived, so sequential
	// calls time out on the first request.
	var arrived sync.WaitGroup
	arrived.Add(3)
	all := make(chan struct{})
	go func() {
		arrived.Wait()
		close(all)
	}()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		arrived.Done()
		select {
		case <-all:
		case <-time.After(2 * time.Second):
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		switch Method(r.URL.Query().Get("method")) {
		case MethodArtistSearch:
			w.Write([]byte(artistSearchBody))
		case MethodTrackSearch:
			w.Write([]byte(trackSearchBody))
		default:
			w.Write([]byte(albumSearchBody))
		}
	}))
	defer server.Close()
	client := newTestClient(t, server.URL)

	result, err := client.Search(context.Background(), SearchParams{Query: "believe"})
	require.NoError(t, err)
	assert.Len(t, result.Result.Artists, 2)
	assert.Len(t, result.Result.Tracks, 2)
	assert.Len(t, result.Result.Albums, 1)
}

func TestSearchLimits(t *testing.T) {
	limits := make(chan [2]string, 3)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limits <- [2]string{q.Get("method"), q.Get("limit")}
		switch Method(q.Get("method")) {
		case MethodArtistSearch:
			w.Write([]byte(artistSearchBody))
		case MethodTrackSearch:
			w.Write([]byte(trackSearchBody))
		default:
			w.Write([]byte(albumSearchBody))
		}
	}))
	defer server.Close()
	client := newTestClient(t, server.URL)

	_, err := client.Search(context.Background(), SearchParams{Query: "believe", Limit: 5, ArtistLimit: 2})
	require.NoError(t, err)
	close(limits)

	got := map[string]string{}
	for l := range limits {
		got[l[0]] = l[1]
	}
	assert.Equal(t, map[string]string{
		"artist.search": "2",
		"track.search":  "5",
		"album.search":  "5",
	}, got)
}

func TestSearchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch Method(r.URL.Query().Get("method")) {
		case MethodArtistSearch:
			w.Write([]byte(artistSearchBody))
		case MethodTrackSearch:
			w.Write([]byte(trackSearchBody))
		default:
			w.Write([]byte("not json"))
		}
	}))
	defer server.Close()
	client := newTestClient(t, server.URL)

	result, err := client.Search(context.Background(), SearchParams{Query: "believe"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTransport)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, MethodAlbumSearch, transportErr.Method)
}

func TestTopResult(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		artists  []Artist
		tracks   []Track
		albums   []Album
		expected Result
	}{
		{
			name:     "only exact match wins regardless of listeners",
			query:    "x",
			artists:  []Artist{{Name: "Xzibit", Listeners: 100000}},
			tracks:   []Track{{Name: "Track", Listeners: 5000}},
			albums:   []Album{{Name: "X"}},
			expected: Album{Name: "X"},
		},
		{
			name:     "highest listener exact match",
			query:    "believe",
			artists:  []Artist{{Name: "Believe", Listeners: 10}},
			tracks:   []Track{{Name: "BELIEVE", Listeners: 20}, {Name: "Believe", Listeners: 15}},
			expected: Track{Name: "BELIEVE", Listeners: 20},
		},
		{
			name:     "album exact match loses to artist exact match with zero listeners",
			query:    "believe",
			artists:  []Artist{{Name: "believe"}},
			albums:   []Album{{Name: "Believe", Listeners: 99}},
			expected: Artist{Name: "believe"},
		},
		{
			name:     "tie keeps the first match",
			query:    "believe",
			artists:  []Artist{{Name: "Believe", Listeners: 7}},
			tracks:   []Track{{Name: "Believe", Listeners: 7}},
			expected: Artist{Name: "Believe", Listeners: 7},
		},
		{
			name:     "fallback to highest listener artist or track",
			query:    "zzz",
			artists:  []Artist{{Name: "A", Listeners: 10}},
			tracks:   []Track{{Name: "B", Listeners: 30}, {Name: "C", Listeners: 20}},
			albums:   []Album{{Name: "D", Listeners: 1000}},
			expected: Track{Name: "B", Listeners: 30},
		},
		{
			name:     "albums alone never fall back",
			query:    "zzz",
			albums:   []Album{{Name: "D"}},
			expected: nil,
		},
		{
			name:     "no results",
			query:    "zzz",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopResult(tt.query, tt.artists, tt.tracks, tt.albums))
		})
	}
}
