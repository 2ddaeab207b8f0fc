package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/s0up4200/lfm/lastfm"
)

// ConsoleFormatter provides tree-style console output for Last.fm results
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// Format dispatches on the result type. Unknown values are printed with %+v.
func (f *ConsoleFormatter) Format(v any) string {
	switch r := v.(type) {
	case *lastfm.Artist:
		return f.FormatArtist(r)
	case *lastfm.Album:
		return f.FormatAlbum(r)
	case *lastfm.Track:
		return f.FormatTrack(r)
	case *lastfm.Tag:
		return f.FormatTag(r)
	case *lastfm.Correction:
		return f.FormatCorrection(r)
	case *lastfm.SearchResult:
		return f.FormatSearch(r)
	case *lastfm.Results[lastfm.Artist]:
		return f.FormatArtists(r.Result, r.Meta)
	case *lastfm.Results[lastfm.Album]:
		return f.FormatAlbums(r.Result, r.Meta)
	case *lastfm.Results[lastfm.Track]:
		return f.FormatTracks(r.Result, r.Meta)
	case *lastfm.ArtistList:
		return f.FormatArtistList(r)
	case *lastfm.AlbumList:
		return f.FormatAlbumList(r)
	case *lastfm.TrackList:
		return f.FormatTrackList(r)
	case *lastfm.TagList:
		return f.FormatTagList(r)
	case *lastfm.WeeklyChartList:
		return f.FormatWeeklyCharts(r)
	default:
		return fmt.Sprintf("%+v\n", v)
	}
}

// FormatArtist formats a single artist with its details
func (f *ConsoleFormatter) FormatArtist(a *lastfm.Artist) string {
	if a == nil {
		return "No artist found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", a.Name)
	writeStats(&sb, "", a.Listeners, a.Playcount)
	writeField(&sb, "", "MBID", a.MBID)
	writeField(&sb, "", "URL", a.URL)
	writeField(&sb, "", "Tags", strings.Join(a.Tags, ", "))
	writeSummary(&sb, a.Summary)

	if len(a.Similar) > 0 {
		sb.WriteString("\nSimilar:\n")
		for i, s := range a.Similar {
			writeBranch(&sb, i == len(a.Similar)-1, s.Name)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatAlbum formats a single album with its track listing
func (f *ConsoleFormatter) FormatAlbum(a *lastfm.Album) string {
	if a == nil {
		return "No album found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s by %s\n", a.Name, a.ArtistName)
	writeStats(&sb, "", a.Listeners, a.Playcount)
	writeField(&sb, "", "MBID", a.MBID)
	writeField(&sb, "", "URL", a.URL)
	writeField(&sb, "", "Tags", strings.Join(a.Tags, ", "))
	writeSummary(&sb, a.Summary)

	if len(a.Tracks) > 0 {
		sb.WriteString("\nTracks:\n")
		for i, t := range a.Tracks {
			line := fmt.Sprintf("%d. %s", i+1, t.Name)
			if t.Duration > 0 {
				line += " (" + formatDuration(t.Duration) + ")"
			}
			writeBranch(&sb, i == len(a.Tracks)-1, line)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatTrack formats a single track
func (f *ConsoleFormatter) FormatTrack(t *lastfm.Track) string {
	if t == nil {
		return "No track found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s by %s\n", t.Name, t.ArtistName)
	writeField(&sb, "", "Album", t.AlbumName)
	if t.Duration > 0 {
		writeField(&sb, "", "Duration", formatDuration(t.Duration))
	}
	writeStats(&sb, "", t.Listeners, t.Playcount)
	writeField(&sb, "", "URL", t.URL)
	writeField(&sb, "", "Tags", strings.Join(t.Tags, ", "))
	writeSummary(&sb, t.Summary)
	sb.WriteString("\n")
	return sb.String()
}

// FormatTag formats tag details
func (f *ConsoleFormatter) FormatTag(t *lastfm.Tag) string {
	if t == nil {
		return "No tag found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", t.Name)
	fmt.Fprintf(&sb, "Reach: %s | Taggings: %s\n", formatCount(t.Reach), formatCount(t.Total))
	writeSummary(&sb, t.Summary)
	sb.WriteString("\n")
	return sb.String()
}

// FormatCorrection formats a correction suggestion
func (f *ConsoleFormatter) FormatCorrection(c *lastfm.Correction) string {
	if c == nil {
		return "No correction available\n"
	}
	if c.ArtistName != "" {
		return fmt.Sprintf("Did you mean: %s by %s\n", c.Name, c.ArtistName)
	}
	return fmt.Sprintf("Did you mean: %s\n", c.Name)
}

// FormatArtists formats a page of artists
func (f *ConsoleFormatter) FormatArtists(artists []lastfm.Artist, meta lastfm.Meta) string {
	if len(artists) == 0 {
		return "No artists found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Artist", len(artists), meta)
	for i, a := range artists {
		isLast := i == len(artists)-1
		writeBranch(&sb, isLast, a.Name)
		writeStats(&sb, indentFor(isLast), a.Listeners, a.Playcount)
		if !isLast {
			sb.WriteString("│\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatAlbums formats a page of albums
func (f *ConsoleFormatter) FormatAlbums(albums []lastfm.Album, meta lastfm.Meta) string {
	if len(albums) == 0 {
		return "No albums found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Album", len(albums), meta)
	for i, a := range albums {
		isLast := i == len(albums)-1
		writeBranch(&sb, isLast, fmt.Sprintf("%s by %s", a.Name, a.ArtistName))
		writeStats(&sb, indentFor(isLast), a.Listeners, a.Playcount)
		if !isLast {
			sb.WriteString("│\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatTracks formats a page of tracks
func (f *ConsoleFormatter) FormatTracks(tracks []lastfm.Track, meta lastfm.Meta) string {
	if len(tracks) == 0 {
		return "No tracks found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Track", len(tracks), meta)
	for i, t := range tracks {
		isLast := i == len(tracks)-1
		writeBranch(&sb, isLast, fmt.Sprintf("%s by %s", t.Name, t.ArtistName))
		indent := indentFor(isLast)
		if t.Duration > 0 {
			writeField(&sb, indent, "Duration", formatDuration(t.Duration))
		}
		writeStats(&sb, indent, t.Listeners, t.Playcount)
		if !isLast {
			sb.WriteString("│\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatSearch formats a combined search result, top match first
func (f *ConsoleFormatter) FormatSearch(r *lastfm.SearchResult) string {
	if r == nil {
		return "No results\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nResults for %q (page %d of %d, %s total)\n", r.Meta.Query, r.Meta.Page, r.Meta.TotalPages, formatCount(r.Meta.Total))

	if r.Result.Top != nil {
		fmt.Fprintf(&sb, "\nTop result: %s (%s)\n", describe(r.Result.Top), r.Result.Top.Kind())
	}

	sections := []struct {
		title string
		lines []string
	}{
		{"Artists", mapLines(r.Result.Artists, func(a lastfm.Artist) string {
			return fmt.Sprintf("%s (%s listeners)", a.Name, formatCount(a.Listeners))
		})},
		{"Tracks", mapLines(r.Result.Tracks, func(t lastfm.Track) string {
			return fmt.Sprintf("%s by %s (%s listeners)", t.Name, t.ArtistName, formatCount(t.Listeners))
		})},
		{"Albums", mapLines(r.Result.Albums, func(a lastfm.Album) string {
			return fmt.Sprintf("%s by %s", a.Name, a.ArtistName)
		})},
	}

	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s (%d):\n", section.title, len(section.lines))
		for i, line := range section.lines {
			writeBranch(&sb, i == len(section.lines)-1, line)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatArtistList formats artists in the API's own shape
func (f *ConsoleFormatter) FormatArtistList(l *lastfm.ArtistList) string {
	lines := make([]string, 0, len(l.Artist))
	for _, a := range l.Artist {
		line := a.Name
		switch {
		case a.Match > 0:
			line += fmt.Sprintf(" (match %.2f)", float64(a.Match))
		case a.Listeners > 0:
			line += fmt.Sprintf(" (%s listeners)", formatCount(a.Listeners.Int()))
		}
		lines = append(lines, line)
	}
	return formatRanked("Artist", lines)
}

// FormatAlbumList formats albums in the API's own shape
func (f *ConsoleFormatter) FormatAlbumList(l *lastfm.AlbumList) string {
	lines := make([]string, 0, len(l.Album))
	for _, a := range l.Album {
		lines = append(lines, fmt.Sprintf("%s by %s", a.Name, a.Artist.Name))
	}
	return formatRanked("Album", lines)
}

// FormatTrackList formats tracks in the API's own shape
func (f *ConsoleFormatter) FormatTrackList(l *lastfm.TrackList) string {
	lines := make([]string, 0, len(l.Track))
	for _, t := range l.Track {
		line := fmt.Sprintf("%s by %s", t.Name, t.Artist.Name)
		if t.Match > 0 {
			line += fmt.Sprintf(" (match %.2f)", float64(t.Match))
		}
		lines = append(lines, line)
	}
	return formatRanked("Track", lines)
}

// FormatTagList formats tags in the API's own shape
func (f *ConsoleFormatter) FormatTagList(l *lastfm.TagList) string {
	lines := make([]string, 0, len(l.Tag))
	for _, t := range l.Tag {
		line := t.Name
		if t.Count > 0 {
			line += fmt.Sprintf(" (%d)", t.Count)
		}
		lines = append(lines, line)
	}
	return formatRanked("Tag", lines)
}

// FormatWeeklyCharts formats the available weekly chart ranges
func (f *ConsoleFormatter) FormatWeeklyCharts(l *lastfm.WeeklyChartList) string {
	lines := make([]string, 0, len(l.Chart))
	for _, c := range l.Chart {
		from := time.Unix(int64(c.From), 0).UTC().Format("2006-01-02")
		to := time.Unix(int64(c.To), 0).UTC().Format("2006-01-02")
		lines = append(lines, from+" to "+to)
	}
	return formatRanked("Chart", lines)
}

func formatRanked(noun string, lines []string) string {
	if len(lines) == 0 {
		return fmt.Sprintf("No %ss found\n", strings.ToLower(noun))
	}

	var sb strings.Builder
	sb.WriteString("\n" + noun)
	if len(lines) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(lines))
	for i, line := range lines {
		writeBranch(&sb, i == len(lines)-1, fmt.Sprintf("%d. %s", i+1, line))
	}
	sb.WriteString("\n")
	return sb.String()
}

func writeHeader(sb *strings.Builder, noun string, n int, meta lastfm.Meta) {
	sb.WriteString("\n" + noun)
	if n != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(sb, " (%d", n)
	if meta.TotalPages > 0 {
		fmt.Fprintf(sb, ", page %d of %d", meta.Page, meta.TotalPages)
	}
	sb.WriteString("):\n\n")
}

func writeBranch(sb *strings.Builder, isLast bool, text string) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}
	fmt.Fprintf(sb, "%s── %s\n", prefix, text)
}

func indentFor(isLast bool) string {
	if isLast {
		return "    "
	}
	return "│   "
}

func writeField(sb *strings.Builder, indent, label, value string) {
	if value != "" {
		fmt.Fprintf(sb, "%s%s: %s\n", indent, label, value)
	}
}

func writeStats(sb *strings.Builder, indent string, listeners, playcount int) {
	var parts []string
	if listeners > 0 {
		parts = append(parts, "Listeners: "+formatCount(listeners))
	}
	if playcount > 0 {
		parts = append(parts, "Plays: "+formatCount(playcount))
	}
	if len(parts) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(parts, " | "))
	}
}

func writeSummary(sb *strings.Builder, summary string) {
	if summary != "" {
		fmt.Fprintf(sb, "\n%s\n", summary)
	}
}

func describe(r lastfm.Result) string {
	switch v := r.(type) {
	case lastfm.Track:
		return v.Name + " by " + v.ArtistName
	case lastfm.Album:
		return v.Name + " by " + v.ArtistName
	default:
		return r.Title()
	}
}

func mapLines[T any](items []T, fn func(T) string) []string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fn(item)
	}
	return lines
}

// formatCount renders n with thousands separators
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
