package filter

import (
	"errors"
	"testing"

	"github.com/s0up4200/lfm/lastfm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasTag("pop")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasTag("unclosed`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `Listeners + 1`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `isTrack() and Listeners > 1000 and containsText(Artist, "cher") and Duration < 300`,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, filter)
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	track := ItemFrom(lastfm.Track{
		Type:       lastfm.TypeTrack,
		Name:       "Believe",
		ArtistName: "Cher",
		AlbumName:  "Believe",
		Duration:   239,
		Listeners:  900000,
		Images:     []string{"x.png"},
		Tags:       []string{"Pop", "dance"},
	})

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"type helper", `isTrack()`, true},
		{"wrong type helper", `isArtist() or isAlbum()`, false},
		{"listener threshold", `Listeners >= 900000`, true},
		{"case insensitive tag", `hasTag("pop")`, true},
		{"missing tag", `hasTag("metal")`, false},
		{"image helper", `hasImage()`, true},
		{"string helpers", `hasPrefix(Name, "bel") and hasSuffix(Artist, "ER")`, true},
		{"contains text helper", `containsText(Album, "LIEV")`, true},
		{"operator form is case sensitive", `Name startsWith "bel"`, false},
		{"lower helper", `lower(Artist) == "cher"`, true},
		{"album field", `Album == "Believe" and Type == "track"`, true},
		{"item struct", `Item.Duration > 200`, true},
		{"tag list", `"dance" in Tags`, true},
		{"undefined variable", `Unknown == nil`, true},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filter.Evaluate(track))
		})
	}
}

func TestHelperFunctionsCompile(t *testing.T) {
	expressions := []string{
		`containsText(Name, "x")`,
		`hasPrefix(Name, "x")`,
		`hasSuffix(Name, "x")`,
		`lower(Name) == "x"`,
		`upper(Name) == "X"`,
		`hasTag("x")`,
		`hasImage()`,
		`isArtist()`,
		`isAlbum()`,
		`isTrack()`,
	}

	compiler := NewExprCompiler()
	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			filter, err := compiler.Compile(expression)
			require.NoError(t, err)
			_, err = filter.Match(Item{Name: "x"})
			assert.NoError(t, err)
		})
	}
}

func TestItemFrom(t *testing.T) {
	artist := ItemFrom(lastfm.Artist{Name: "Cher", Listeners: 10, Tags: []string{"pop"}})
	assert.Equal(t, Item{Type: "artist", Name: "Cher", Artist: "Cher", Listeners: 10, Tags: []string{"pop"}}, artist)

	album := ItemFrom(lastfm.Album{Name: "Believe", ArtistName: "Cher"})
	assert.Equal(t, "album", album.Type)
	assert.Equal(t, "Believe", album.Album)
	assert.Equal(t, "Cher", album.Artist)

	assert.Equal(t, Item{}, ItemFrom(nil))
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isCher": func(s string) bool { return s == "Cher" },
	}))

	filter, err := compiler.Compile(`isCher(Artist)`)
	require.NoError(t, err)
	assert.True(t, filter.Evaluate(Item{Artist: "Cher"}))
	assert.False(t, filter.Evaluate(Item{Artist: "Madonna"}))
}

func TestEvaluationError(t *testing.T) {
	compiler := NewExprCompiler()
	filter, err := compiler.Compile(`Item.Tags[5] == "pop"`)
	require.NoError(t, err)

	ok, err := filter.Match(Item{Name: "Cher", Tags: []string{"pop"}})
	require.Error(t, err)
	assert.False(t, ok)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "Cher", evalErr.ItemName)
	assert.False(t, filter.Evaluate(Item{Name: "Cher"}))
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`isArtist()`)
	require.NoError(t, err)
	second, err := compiler.Compile(` isArtist() `)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`isAlbum()`)
	require.NoError(t, err)
	_, err = compiler.Compile(`isTrack()`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Zero(t, compiler.Size())
}

func TestLRUCacheEviction(t *testing.T) {
	cache := newLRUCache[string, int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", 3)

	_, ok = cache.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Put("a", 10)
	v, _ = cache.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, cache.Size())
}

func searchFixture() *lastfm.SearchResult {
	artists := []lastfm.Artist{
		{Type: lastfm.TypeArtist, Name: "Cher", Listeners: 3000, Tags: []string{"pop"}},
		{Type: lastfm.TypeArtist, Name: "Cher Lloyd", Listeners: 400},
	}
	tracks := []lastfm.Track{
		{Type: lastfm.TypeTrack, Name: "Believe", ArtistName: "Cher", Listeners: 2000},
		{Type: lastfm.TypeTrack, Name: "Cher", ArtistName: "Someone", Listeners: 50},
	}
	albums := []lastfm.Album{
		{Type: lastfm.TypeAlbum, Name: "Cher", ArtistName: "Cher"},
	}
	return &lastfm.SearchResult{
		Meta: lastfm.Meta{Query: "cher", Page: 1, PerPage: 30, Total: 3, TotalPages: 1},
		Result: lastfm.SearchMatches{
			Artists: artists,
			Tracks:  tracks,
			Albums:  albums,
			Top:     lastfm.TopResult("cher", artists, tracks, albums),
		},
	}
}

func TestManagerApply(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.RegisterFilters(map[string]string{
		"popular":    `Listeners >= 1000`,
		"tracksOnly": `isTrack()`,
	}))
	assert.Equal(t, []string{"popular", "tracksOnly"}, m.ListFilters())

	result := searchFixture()
	require.Equal(t, "Cher", result.Result.Top.Title())

	t.Run("top kept when it matches", func(t *testing.T) {
		filtered, err := m.ApplyPreset("popular", result)
		require.NoError(t, err)
		assert.Len(t, filtered.Result.Artists, 1)
		assert.Len(t, filtered.Result.Tracks, 1)
		assert.Empty(t, filtered.Result.Albums)
		assert.Equal(t, result.Result.Top, filtered.Result.Top)
		assert.Equal(t, result.Meta, filtered.Meta)
	})

	t.Run("top recomputed when filtered out", func(t *testing.T) {
		filtered, err := m.ApplyPreset("tracksOnly", result)
		require.NoError(t, err)
		assert.Empty(t, filtered.Result.Artists)
		require.NotNil(t, filtered.Result.Top)
		top, ok := filtered.Result.Top.(lastfm.Track)
		require.True(t, ok)
		assert.Equal(t, "Someone", top.ArtistName, "exact name match among remaining tracks")
	})

	t.Run("original is not modified", func(t *testing.T) {
		assert.Len(t, result.Result.Artists, 2)
		assert.Len(t, result.Result.Tracks, 2)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := m.ApplyPreset("missing", result)
		assert.Error(t, err)
	})

	t.Run("ad hoc expression", func(t *testing.T) {
		filtered, err := m.ApplyExpression(`Artist == "Nobody"`, result)
		require.NoError(t, err)
		assert.Nil(t, filtered.Result.Top)
	})

	t.Run("invalid preset keeps existing ones", func(t *testing.T) {
		err := m.RegisterFilters(map[string]string{"broken": `(`})
		require.Error(t, err)
		_, exists := m.GetFilter("broken")
		assert.False(t, exists)
		m.UnregisterFilter("popular")
		assert.Equal(t, []string{"tracksOnly"}, m.ListFilters())
	})
}
