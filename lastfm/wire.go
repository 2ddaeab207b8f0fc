package lastfm

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is an integer field that Last.fm encodes as either a JSON number
// or a numeric string. Anything unparseable decodes to zero.
type Number int64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = Number(v)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*n = Number(f)
		return nil
	}
	*n = 0
	return nil
}

// Int returns n as an int
func (n Number) Int() int {
	return int(n)
}

// Float is a decimal field (similarity match scores) with the same
// string-or-number encoding as Number.
type Float float64

// UnmarshalJSON implements json.Unmarshaler
func (f *Float) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}
	*f = Float(v)
	return nil
}

// List decodes a JSON array, or a lone object where the API collapses a
// one-element array. Any other value (null, "", "\n") decodes to an empty list.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler
func (l *List[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*l = nil
		return nil
	}

	switch b[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
	case '{':
		var item T
		if err := json.Unmarshal(b, &item); err != nil {
			return err
		}
		*l = List[T]{item}
	default:
		*l = nil
	}
	return nil
}

// decodeObject unmarshals b into v only when b holds a JSON object. The API
// sends an empty string in place of empty containers.
func decodeObject(b []byte, v any) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	return json.Unmarshal(b, v)
}

// ArtistRef is the artist attached to an album or track. Depending on the
// endpoint the API sends a bare name or an object.
type ArtistRef struct {
	Name string `json:"name"`
	MBID string `json:"mbid,omitempty"`
	URL  string `json:"url,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler
func (a *ArtistRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		*a = ArtistRef{}
		return json.Unmarshal(b, &a.Name)
	}
	type plain ArtistRef
	return decodeObject(b, (*plain)(a))
}

// Image is one size variant of an artwork URL.
type Image struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

// Attr carries the "@attr" block of list payloads.
type Attr struct {
	Page       Number `json:"page,omitempty"`
	PerPage    Number `json:"perPage,omitempty"`
	Total      Number `json:"total,omitempty"`
	TotalPages Number `json:"totalPages,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Album      string `json:"album,omitempty"`
	Track      string `json:"track,omitempty"`
	Tag        string `json:"tag,omitempty"`
	Country    string `json:"country,omitempty"`
	For        string `json:"for,omitempty"`
}

// Rank is the per-item "@attr" block of chart entries.
type Rank struct {
	Rank Number `json:"rank,omitempty"`
}

// RawArtist is an artist entry as sent by the API.
type RawArtist struct {
	Name       string      `json:"name"`
	MBID       string      `json:"mbid,omitempty"`
	URL        string      `json:"url,omitempty"`
	Listeners  Number      `json:"listeners,omitempty"`
	Playcount  Number      `json:"playcount,omitempty"`
	Match      Float       `json:"match,omitempty"`
	Streamable string      `json:"streamable,omitempty"`
	Image      List[Image] `json:"image,omitempty"`
	Rank       *Rank       `json:"@attr,omitempty"`
}

// RawAlbum is an album entry as sent by the API.
type RawAlbum struct {
	Name      string      `json:"name"`
	Artist    ArtistRef   `json:"artist"`
	MBID      string      `json:"mbid,omitempty"`
	URL       string      `json:"url,omitempty"`
	Listeners Number      `json:"listeners,omitempty"`
	Playcount Number      `json:"playcount,omitempty"`
	Image     List[Image] `json:"image,omitempty"`
	Rank      *Rank       `json:"@attr,omitempty"`
}

// RawTrack is a track entry as sent by the API.
type RawTrack struct {
	Name      string      `json:"name"`
	Artist    ArtistRef   `json:"artist"`
	MBID      string      `json:"mbid,omitempty"`
	URL       string      `json:"url,omitempty"`
	Duration  Number      `json:"duration,omitempty"`
	Listeners Number      `json:"listeners,omitempty"`
	Playcount Number      `json:"playcount,omitempty"`
	Match     Float       `json:"match,omitempty"`
	Image     List[Image] `json:"image,omitempty"`
	Rank      *Rank       `json:"@attr,omitempty"`
}

// RawTag is a tag entry as sent by the API.
type RawTag struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Count    Number `json:"count,omitempty"`
	Reach    Number `json:"reach,omitempty"`
	Taggings Number `json:"taggings,omitempty"`
}

// Chart is one week of a weekly chart list, as unix timestamps.
type Chart struct {
	From Number `json:"from"`
	To   Number `json:"to"`
}

// ArtistList is the unmodified payload of artist list endpoints.
type ArtistList struct {
	Artist List[RawArtist] `json:"artist"`
	Attr   Attr            `json:"@attr"`
}

// AlbumList is the unmodified payload of album list endpoints.
type AlbumList struct {
	Album List[RawAlbum] `json:"album"`
	Attr  Attr           `json:"@attr"`
}

// TrackList is the unmodified payload of track list endpoints.
type TrackList struct {
	Track List[RawTrack] `json:"track"`
	Attr  Attr           `json:"@attr"`
}

// TagList is the unmodified payload of tag list endpoints.
type TagList struct {
	Tag  List[RawTag] `json:"tag"`
	Attr Attr         `json:"@attr"`
}

// WeeklyChartList is the payload of tag.getWeeklyChartList.
type WeeklyChartList struct {
	Chart List[Chart] `json:"chart"`
	Attr  Attr        `json:"@attr"`
}

// pageInfo holds the two pagination dialects the API uses.
type pageInfo struct {
	TotalResults *Number `json:"opensearch:totalResults"`
	StartIndex   Number  `json:"opensearch:startIndex"`
	ItemsPerPage Number  `json:"opensearch:itemsPerPage"`
	Attr         *Attr   `json:"@attr"`
}

type tagContainer struct {
	Tag List[RawTag] `json:"tag"`
}

func (c *tagContainer) UnmarshalJSON(b []byte) error {
	type plain tagContainer
	return decodeObject(b, (*plain)(c))
}

type artistContainer struct {
	Artist List[RawArtist] `json:"artist"`
}

func (c *artistContainer) UnmarshalJSON(b []byte) error {
	type plain artistContainer
	return decodeObject(b, (*plain)(c))
}

type albumContainer struct {
	Album List[RawAlbum] `json:"album"`
}

func (c *albumContainer) UnmarshalJSON(b []byte) error {
	type plain albumContainer
	return decodeObject(b, (*plain)(c))
}

type trackContainer struct {
	Track List[RawTrack] `json:"track"`
}

func (c *trackContainer) UnmarshalJSON(b []byte) error {
	type plain trackContainer
	return decodeObject(b, (*plain)(c))
}

type wiki struct {
	Summary string `json:"summary"`
	Content string `json:"content"`
}

type artistInfoPayload struct {
	Name  string      `json:"name"`
	MBID  string      `json:"mbid"`
	URL   string      `json:"url"`
	Image List[Image] `json:"image"`
	Stats struct {
		Listeners Number `json:"listeners"`
		Playcount Number `json:"playcount"`
	} `json:"stats"`
	Similar artistContainer `json:"similar"`
	Tags    tagContainer    `json:"tags"`
	Bio     wiki            `json:"bio"`
}

type albumInfoPayload struct {
	Name      string         `json:"name"`
	Artist    ArtistRef      `json:"artist"`
	MBID      string         `json:"mbid"`
	URL       string         `json:"url"`
	Image     List[Image]    `json:"image"`
	Listeners Number         `json:"listeners"`
	Playcount Number         `json:"playcount"`
	Tracks    trackContainer `json:"tracks"`
	Tags      tagContainer   `json:"tags"`
	Wiki      wiki           `json:"wiki"`
}

type trackInfoPayload struct {
	Name      string    `json:"name"`
	MBID      string    `json:"mbid"`
	URL       string    `json:"url"`
	Duration  Number    `json:"duration"`
	Listeners Number    `json:"listeners"`
	Playcount Number    `json:"playcount"`
	Artist    ArtistRef `json:"artist"`
	Album     *struct {
		Title string      `json:"title"`
		Image List[Image] `json:"image"`
	} `json:"album"`
	TopTags tagContainer `json:"toptags"`
	Wiki    wiki         `json:"wiki"`
}

type tagInfoPayload struct {
	Name  string `json:"name"`
	Total Number `json:"total"`
	Reach Number `json:"reach"`
	Wiki  wiki   `json:"wiki"`
}

type artistSearchPayload struct {
	pageInfo
	Matches artistContainer `json:"artistmatches"`
}

type albumSearchPayload struct {
	pageInfo
	Matches albumContainer `json:"albummatches"`
}

type trackSearchPayload struct {
	pageInfo
	Matches trackContainer `json:"trackmatches"`
}

type correctionPayload struct {
	Correction List[struct {
		Artist *RawArtist `json:"artist"`
		Track  *RawTrack  `json:"track"`
	}] `json:"correction"`
}

func (p *correctionPayload) UnmarshalJSON(b []byte) error {
	type plain correctionPayload
	return decodeObject(b, (*plain)(p))
}
