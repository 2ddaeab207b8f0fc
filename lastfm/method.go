package lastfm

// Method names a remote Last.fm API operation.
type Method string

const (
	MethodAlbumInfo          Method = "album.getInfo"
	MethodAlbumTopTags       Method = "album.getTopTags"
	MethodAlbumSearch        Method = "album.search"
	MethodArtistCorrection   Method = "artist.getCorrection"
	MethodArtistInfo         Method = "artist.getInfo"
	MethodArtistSimilar      Method = "artist.getSimilar"
	MethodArtistTopAlbums    Method = "artist.getTopAlbums"
	MethodArtistTopTags      Method = "artist.getTopTags"
	MethodArtistTopTracks    Method = "artist.getTopTracks"
	MethodArtistSearch       Method = "artist.search"
	MethodChartTopArtists    Method = "chart.getTopArtists"
	MethodChartTopTags       Method = "chart.getTopTags"
	MethodChartTopTracks     Method = "chart.getTopTracks"
	MethodGeoTopArtists      Method = "geo.getTopArtists"
	MethodGeoTopTracks       Method = "geo.getTopTracks"
	MethodTagInfo            Method = "tag.getInfo"
	MethodTagSimilar         Method = "tag.getSimilar"
	MethodTagTopAlbums       Method = "tag.getTopAlbums"
	MethodTagTopArtists      Method = "tag.getTopArtists"
	MethodTagTopTags         Method = "tag.getTopTags"
	MethodTagTopTracks       Method = "tag.getTopTracks"
	MethodTagWeeklyChartList Method = "tag.getWeeklyChartList"
	MethodTrackCorrection    Method = "track.getCorrection"
	MethodTrackInfo          Method = "track.getInfo"
	MethodTrackSimilar       Method = "track.getSimilar"
	MethodTrackTopTags       Method = "track.getTopTags"
	MethodTrackSearch        Method = "track.search"
)

// methodDef is what the dispatcher needs to know about an operation.
type methodDef struct {
	field       string // top-level key holding the payload
	autocorrect bool
}

var methods = map[Method]methodDef{
	MethodAlbumInfo:          {field: "album", autocorrect: true},
	MethodAlbumTopTags:       {field: "toptags", autocorrect: true},
	MethodAlbumSearch:        {field: "results"},
	MethodArtistCorrection:   {field: "corrections"},
	MethodArtistInfo:         {field: "artist", autocorrect: true},
	MethodArtistSimilar:      {field: "similarartists", autocorrect: true},
	MethodArtistTopAlbums:    {field: "topalbums", autocorrect: true},
	MethodArtistTopTags:      {field: "toptags", autocorrect: true},
	MethodArtistTopTracks:    {field: "toptracks", autocorrect: true},
	MethodArtistSearch:       {field: "results"},
	MethodChartTopArtists:    {field: "artists", autocorrect: true},
	MethodChartTopTags:       {field: "tags", autocorrect: true},
	MethodChartTopTracks:     {field: "tracks", autocorrect: true},
	MethodGeoTopArtists:      {field: "topartists", autocorrect: true},
	MethodGeoTopTracks:       {field: "tracks", autocorrect: true},
	MethodTagInfo:            {field: "tag"},
	MethodTagSimilar:         {field: "similartags"},
	MethodTagTopAlbums:       {field: "albums"},
	MethodTagTopArtists:      {field: "topartists"},
	MethodTagTopTags:         {field: "toptags"},
	MethodTagTopTracks:       {field: "tracks"},
	MethodTagWeeklyChartList: {field: "weeklychartlist"},
	MethodTrackCorrection:    {field: "corrections"},
	MethodTrackInfo:          {field: "track", autocorrect: true},
	MethodTrackSimilar:       {field: "similartracks", autocorrect: true},
	MethodTrackTopTags:       {field: "toptags", autocorrect: true},
	MethodTrackSearch:        {field: "results"},
}

// ResultField returns the top-level key under which the API nests the
// payload of m.
func (m Method) ResultField() string {
	return methods[m].field
}

// Autocorrect reports whether requests for m ask the API to fix misspelled names.
func (m Method) Autocorrect() bool {
	return methods[m].autocorrect
}

func (m Method) String() string {
	return string(m)
}
