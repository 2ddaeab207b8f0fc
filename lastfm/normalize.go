package lastfm

import (
	"slices"
	"strings"
)

// imageSizeRank orders the size labels used by the API. Unknown labels
// rank with the empty size.
var imageSizeRank = map[string]int{
	"":           0,
	"small":      1,
	"medium":     2,
	"large":      3,
	"extralarge": 4,
	"mega":       5,
}

const readMoreMarker = "Read more on Last.fm"

// parseImages returns image URLs largest first. Entries without a URL are
// dropped and entries without a size sort last.
func parseImages(images []Image) []string {
	kept := make([]Image, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img.URL) == "" {
			continue
		}
		kept = append(kept, img)
	}

	slices.SortStableFunc(kept, func(a, b Image) int {
		return imageSizeRank[b.Size] - imageSizeRank[a.Size]
	})

	urls := make([]string, len(kept))
	for i, img := range kept {
		urls[i] = img.URL
	}
	return urls
}

// parseMeta reads pagination from opensearch fields when the payload has
// them, otherwise from @attr.
func parseMeta(info pageInfo, query string) Meta {
	meta := Meta{Query: query}

	if info.TotalResults != nil {
		meta.Total = info.TotalResults.Int()
		meta.PerPage = info.ItemsPerPage.Int()
		meta.Page = 1
		if meta.PerPage > 0 {
			meta.Page = info.StartIndex.Int()/meta.PerPage + 1
			meta.TotalPages = (meta.Total + meta.PerPage - 1) / meta.PerPage
		}
		return meta
	}

	if info.Attr != nil {
		meta.Page = info.Attr.Page.Int()
		meta.PerPage = info.Attr.PerPage.Int()
		meta.Total = info.Attr.Total.Int()
		meta.TotalPages = info.Attr.TotalPages.Int()
	}
	return meta
}

// parseSummary removes the trailing "Read more on Last.fm" link the API
// appends to biographies and wikis.
func parseSummary(text string) string {
	marker := strings.LastIndex(text, readMoreMarker)
	if marker < 0 {
		return text
	}
	anchor := strings.LastIndex(text[:marker], "<a ")
	if anchor < 0 {
		return text
	}
	// The marker has to be the link text of that anchor.
	opening := text[anchor:marker]
	if !strings.Contains(opening, ">") || strings.Contains(opening, "</a>") {
		return text
	}
	if !strings.HasPrefix(text[marker+len(readMoreMarker):], "</a>") {
		return text
	}
	return strings.TrimRight(text[:anchor], " \t\r\n")
}

func parseTags(tags tagContainer) []string {
	names := make([]string, 0, len(tags.Tag))
	for _, t := range tags.Tag {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

func toArtist(raw RawArtist) Artist {
	return Artist{
		Type:      TypeArtist,
		Name:      raw.Name,
		MBID:      raw.MBID,
		URL:       raw.URL,
		Listeners: raw.Listeners.Int(),
		Playcount: raw.Playcount.Int(),
		Images:    parseImages(raw.Image),
	}
}

func toAlbum(raw RawAlbum) Album {
	return Album{
		Type:       TypeAlbum,
		Name:       raw.Name,
		ArtistName: raw.Artist.Name,
		MBID:       raw.MBID,
		URL:        raw.URL,
		Listeners:  raw.Listeners.Int(),
		Playcount:  raw.Playcount.Int(),
		Images:     parseImages(raw.Image),
	}
}

func toTrack(raw RawTrack) Track {
	return Track{
		Type:       TypeTrack,
		Name:       raw.Name,
		ArtistName: raw.Artist.Name,
		MBID:       raw.MBID,
		URL:        raw.URL,
		Duration:   raw.Duration.Int(),
		Listeners:  raw.Listeners.Int(),
		Playcount:  raw.Playcount.Int(),
		Images:     parseImages(raw.Image),
	}
}

// parseArtists normalizes raw artists, dropping those under the
// configured listener threshold.
func (c *Client) parseArtists(raw []RawArtist) []Artist {
	artists := make([]Artist, 0, len(raw))
	for _, r := range raw {
		a := toArtist(r)
		if c.minArtistListeners > 0 && a.Listeners < c.minArtistListeners {
			continue
		}
		artists = append(artists, a)
	}
	return artists
}

func (c *Client) parseAlbums(raw []RawAlbum) []Album {
	albums := make([]Album, 0, len(raw))
	for _, r := range raw {
		albums = append(albums, toAlbum(r))
	}
	return albums
}

// parseTracks normalizes raw tracks, dropping those under the configured
// listener threshold.
func (c *Client) parseTracks(raw []RawTrack) []Track {
	tracks := make([]Track, 0, len(raw))
	for _, r := range raw {
		t := toTrack(r)
		if c.minTrackListeners > 0 && t.Listeners < c.minTrackListeners {
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks
}

func normalizeArtistInfo(p artistInfoPayload) *Artist {
	artist := &Artist{
		Type:      TypeArtist,
		Name:      p.Name,
		MBID:      p.MBID,
		URL:       p.URL,
		Listeners: p.Stats.Listeners.Int(),
		Playcount: p.Stats.Playcount.Int(),
		Images:    parseImages(p.Image),
		Tags:      parseTags(p.Tags),
		Summary:   parseSummary(p.Bio.Summary),
	}
	for _, s := range p.Similar.Artist {
		artist.Similar = append(artist.Similar, toArtist(s))
	}
	return artist
}

func normalizeAlbumInfo(p albumInfoPayload) *Album {
	album := &Album{
		Type:       TypeAlbum,
		Name:       p.Name,
		ArtistName: p.Artist.Name,
		MBID:       p.MBID,
		URL:        p.URL,
		Listeners:  p.Listeners.Int(),
		Playcount:  p.Playcount.Int(),
		Images:     parseImages(p.Image),
		Tags:       parseTags(p.Tags),
		Summary:    parseSummary(p.Wiki.Summary),
	}
	for _, t := range p.Tracks.Track {
		track := toTrack(t)
		track.AlbumName = p.Name
		if track.ArtistName == "" {
			track.ArtistName = p.Artist.Name
		}
		album.Tracks = append(album.Tracks, track)
	}
	return album
}

// normalizeTrackInfo converts track.getInfo. The API reports duration in
// milliseconds there and in seconds everywhere else.
func normalizeTrackInfo(p trackInfoPayload) *Track {
	track := &Track{
		Type:       TypeTrack,
		Name:       p.Name,
		ArtistName: p.Artist.Name,
		MBID:       p.MBID,
		URL:        p.URL,
		Duration:   p.Duration.Int() / 1000,
		Listeners:  p.Listeners.Int(),
		Playcount:  p.Playcount.Int(),
		Tags:       parseTags(p.TopTags),
		Summary:    parseSummary(p.Wiki.Summary),
	}
	if p.Album != nil {
		track.AlbumName = p.Album.Title
		track.Images = parseImages(p.Album.Image)
	}
	return track
}

func normalizeTagInfo(p tagInfoPayload) *Tag {
	return &Tag{
		Type:    TypeTag,
		Name:    p.Name,
		Reach:   p.Reach.Int(),
		Total:   p.Total.Int(),
		Summary: parseSummary(p.Wiki.Summary),
	}
}

// normalizeCorrection flattens the correction envelope. It returns nil
// when the API has nothing to suggest.
func normalizeCorrection(p correctionPayload) *Correction {
	for _, c := range p.Correction {
		switch {
		case c.Track != nil && c.Track.Name != "":
			return &Correction{Name: c.Track.Name, ArtistName: c.Track.Artist.Name, MBID: c.Track.MBID}
		case c.Artist != nil && c.Artist.Name != "":
			return &Correction{Name: c.Artist.Name, MBID: c.Artist.MBID}
		}
	}
	return nil
}
