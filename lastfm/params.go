package lastfm

import (
	"net/url"
	"strconv"
	"strings"
)

// Paging selects one page of a list endpoint. Zero values are left to the
// API defaults (page 1, 50 items for most methods).
type Paging struct {
	Page  int
	Limit int
}

func (p Paging) apply(v url.Values) {
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
}

// AlbumParams identifies an album by artist and title, or by MBID.
type AlbumParams struct {
	Artist   string
	Album    string
	MBID     string
	Username string
	Lang     string
}

func (p AlbumParams) validate(method Method) error {
	if p.MBID != "" {
		return nil
	}
	return requireAll(method, "artist", p.Artist, "album", p.Album)
}

func (p AlbumParams) values() url.Values {
	v := url.Values{}
	setString(v, "artist", p.Artist)
	setString(v, "album", p.Album)
	setString(v, "mbid", p.MBID)
	setString(v, "username", p.Username)
	setString(v, "lang", p.Lang)
	return v
}

// ArtistParams identifies an artist by name or MBID.
type ArtistParams struct {
	Artist   string
	MBID     string
	Username string
	Lang     string
	Paging
}

func (p ArtistParams) validate(method Method) error {
	if p.MBID != "" {
		return nil
	}
	return requireAll(method, "artist", p.Artist)
}

func (p ArtistParams) values() url.Values {
	v := url.Values{}
	setString(v, "artist", p.Artist)
	setString(v, "mbid", p.MBID)
	setString(v, "username", p.Username)
	setString(v, "lang", p.Lang)
	p.Paging.apply(v)
	return v
}

// TrackParams identifies a track by artist and title, or by MBID.
type TrackParams struct {
	Artist   string
	Track    string
	MBID     string
	Username string
	Paging
}

func (p TrackParams) validate(method Method) error {
	if p.MBID != "" {
		return nil
	}
	return requireAll(method, "artist", p.Artist, "track", p.Track)
}

func (p TrackParams) values() url.Values {
	v := url.Values{}
	setString(v, "artist", p.Artist)
	setString(v, "track", p.Track)
	setString(v, "mbid", p.MBID)
	setString(v, "username", p.Username)
	p.Paging.apply(v)
	return v
}

// TagParams names a tag.
type TagParams struct {
	Tag  string
	Lang string
	Paging
}

func (p TagParams) validate(method Method) error {
	return requireAll(method, "tag", p.Tag)
}

func (p TagParams) values() url.Values {
	v := url.Values{}
	setString(v, "tag", p.Tag)
	setString(v, "lang", p.Lang)
	p.Paging.apply(v)
	return v
}

// GeoParams names an ISO 3166-1 country, optionally narrowed to a metro
// location for geo.getTopTracks.
type GeoParams struct {
	Country  string
	Location string
	Paging
}

func (p GeoParams) validate(method Method) error {
	return requireAll(method, "country", p.Country)
}

func (p GeoParams) values() url.Values {
	v := url.Values{}
	setString(v, "country", p.Country)
	setString(v, "location", p.Location)
	p.Paging.apply(v)
	return v
}

// requireAll takes name/value pairs and reports the names whose value is
// blank.
func requireAll(method Method, pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) > 0 {
		return &MissingParameterError{Method: method, Params: missing}
	}
	return nil
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, strconv.Itoa(value))
	}
}
