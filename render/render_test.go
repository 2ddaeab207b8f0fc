package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/s0up4200/lfm/lastfm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatArtist(t *testing.T) {
	f := NewConsoleFormatter()
	out := f.FormatArtist(&lastfm.Artist{
		Name:      "Cher",
		Listeners: 1500000,
		Playcount: 42,
		Tags:      []string{"pop", "dance"},
		Summary:   "Cher is a singer.",
		Similar:   []lastfm.Artist{{Name: "Madonna"}, {Name: "Kylie Minogue"}},
	})

	assert.Contains(t, out, "Cher\n")
	assert.Contains(t, out, "Listeners: 1,500,000 | Plays: 42")
	assert.Contains(t, out, "Tags: pop, dance")
	assert.Contains(t, out, "├── Madonna\n")
	assert.Contains(t, out, "╰── Kylie Minogue\n")
}

func TestFormatTracks(t *testing.T) {
	f := NewConsoleFormatter()
	out := f.FormatTracks([]lastfm.Track{
		{Name: "Believe", ArtistName: "Cher", Duration: 239, Listeners: 1000},
		{Name: "Strong Enough", ArtistName: "Cher"},
	}, lastfm.Meta{Page: 1, TotalPages: 3})

	assert.Contains(t, out, "Tracks (2, page 1 of 3):")
	assert.Contains(t, out, "├── Believe by Cher\n│   Duration: 3:59\n│   Listeners: 1,000\n│\n")
	assert.Contains(t, out, "╰── Strong Enough by Cher\n")

	assert.Equal(t, "No tracks found\n", f.FormatTracks(nil, lastfm.Meta{}))
}

func TestFormatSearch(t *testing.T) {
	f := NewConsoleFormatter()
	out := f.Format(&lastfm.SearchResult{
		Meta: lastfm.Meta{Query: "believe", Page: 1, TotalPages: 4, Total: 1234},
		Result: lastfm.SearchMatches{
			Tracks: []lastfm.Track{{Name: "Believe", ArtistName: "Cher", Listeners: 5}},
			Albums: []lastfm.Album{{Name: "Believe", ArtistName: "Cher"}},
			Top:    lastfm.Track{Name: "Believe", ArtistName: "Cher"},
		},
	})

	assert.Contains(t, out, `Results for "believe" (page 1 of 4, 1,234 total)`)
	assert.Contains(t, out, "Top result: Believe by Cher (track)")
	assert.NotContains(t, out, "Artists (")
	assert.Contains(t, out, "Tracks (1):\n╰── Believe by Cher (5 listeners)\n")
	assert.Contains(t, out, "Albums (1):\n╰── Believe by Cher\n")
}

func TestFormatCorrection(t *testing.T) {
	f := NewConsoleFormatter()
	assert.Equal(t, "No correction available\n", f.Format((*lastfm.Correction)(nil)))
	assert.Equal(t, "Did you mean: Guns N' Roses\n", f.Format(&lastfm.Correction{Name: "Guns N' Roses"}))
	assert.Equal(t, "Did you mean: Mr. Brownstone by Guns N' Roses\n",
		f.Format(&lastfm.Correction{Name: "Mr. Brownstone", ArtistName: "Guns N' Roses"}))
}

func TestFormatRawLists(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.Format(&lastfm.TagList{Tag: lastfm.List[lastfm.RawTag]{{Name: "rock", Count: 100}, {Name: "indie"}}})
	assert.Contains(t, out, "Tags (2):")
	assert.Contains(t, out, "├── 1. rock (100)\n")
	assert.Contains(t, out, "╰── 2. indie\n")

	out = f.Format(&lastfm.WeeklyChartList{Chart: lastfm.List[lastfm.Chart]{{From: 1108296000, To: 1108900800}}})
	assert.Contains(t, out, "╰── 1. 2005-02-13 to 2005-02-20\n")

	assert.Equal(t, "No artists found\n", f.Format(&lastfm.ArtistList{}))
}

func TestFormatCount(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-5:      "-5",
	}
	for n, want := range tests {
		assert.Equal(t, want, formatCount(n))
	}
}

func TestWrite(t *testing.T) {
	artist := &lastfm.Artist{Type: lastfm.TypeArtist, Name: "Cher", Listeners: 10, Images: []string{"a.png"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, artist))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "Cher", decoded["name"])
		assert.Equal(t, "artist", decoded["type"])
	})

	t.Run("yaml keeps json names and order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatYAML, artist))
		out := buf.String()

		assert.True(t, strings.HasPrefix(out, "type: artist\nname: Cher\n"), out)
		assert.Contains(t, out, "images:\n  - a.png\n")

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, 10, decoded["listeners"])
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatTable, artist))
		assert.Contains(t, buf.String(), "Listeners: 10")
	})

	t.Run("unknown format", func(t *testing.T) {
		err := Write(&bytes.Buffer{}, "xml", artist)
		assert.ErrorContains(t, err, "unsupported output format")
	})
}
