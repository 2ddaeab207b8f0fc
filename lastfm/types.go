package lastfm

// ResultType discriminates normalized results.
type ResultType string

const (
	TypeArtist ResultType = "artist"
	TypeAlbum  ResultType = "album"
	TypeTrack  ResultType = "track"
	TypeTag    ResultType = "tag"
)

// Result is implemented by the normalized entities a search can return.
type Result interface {
	Kind() ResultType
	Title() string
	ListenerCount() int
}

// Artist is a normalized artist.
type Artist struct {
	Type      ResultType `json:"type"`
	Name      string     `json:"name"`
	MBID      string     `json:"mbid,omitempty"`
	URL       string     `json:"url,omitempty"`
	Listeners int        `json:"listeners"`
	Playcount int        `json:"playcount,omitempty"`
	Images    []string   `json:"images"`
	Tags      []string   `json:"tags,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	Similar   []Artist   `json:"similar,omitempty"`
}

func (a Artist) Kind() ResultType   { return TypeArtist }
func (a Artist) Title() string      { return a.Name }
func (a Artist) ListenerCount() int { return a.Listeners }

// Album is a normalized album. Listeners is zero on search results, which
// do not carry it.
type Album struct {
	Type       ResultType `json:"type"`
	Name       string     `json:"name"`
	ArtistName string     `json:"artistName"`
	MBID       string     `json:"mbid,omitempty"`
	URL        string     `json:"url,omitempty"`
	Listeners  int        `json:"listeners,omitempty"`
	Playcount  int        `json:"playcount,omitempty"`
	Images     []string   `json:"images"`
	Tags       []string   `json:"tags,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	Tracks     []Track    `json:"tracks,omitempty"`
}

func (a Album) Kind() ResultType { return TypeAlbum }
func (a Album) Title() string    { return a.Name }

// ListenerCount is always zero for albums when ranking search results.
func (a Album) ListenerCount() int { return 0 }

// Track is a normalized track. Duration is in seconds.
type Track struct {
	Type       ResultType `json:"type"`
	Name       string     `json:"name"`
	ArtistName string     `json:"artistName"`
	AlbumName  string     `json:"albumName,omitempty"`
	MBID       string     `json:"mbid,omitempty"`
	URL        string     `json:"url,omitempty"`
	Duration   int        `json:"duration,omitempty"`
	Listeners  int        `json:"listeners,omitempty"`
	Playcount  int        `json:"playcount,omitempty"`
	Images     []string   `json:"images,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Summary    string     `json:"summary,omitempty"`
}

func (t Track) Kind() ResultType   { return TypeTrack }
func (t Track) Title() string      { return t.Name }
func (t Track) ListenerCount() int { return t.Listeners }

// Tag is a normalized tag.
type Tag struct {
	Type    ResultType `json:"type"`
	Name    string     `json:"name"`
	Reach   int        `json:"reach"`
	Total   int        `json:"total"`
	Summary string     `json:"summary,omitempty"`
}

// Correction is the canonical spelling suggested for an artist or track.
// ArtistName is only set for track corrections.
type Correction struct {
	Name       string `json:"name"`
	ArtistName string `json:"artistName,omitempty"`
	MBID       string `json:"mbid,omitempty"`
}

// Meta is the pagination metadata of a list result.
type Meta struct {
	Query      string `json:"query,omitempty"`
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
}

// Results is one page of normalized results.
type Results[T any] struct {
	Meta   Meta `json:"meta"`
	Result []T  `json:"result"`
}

// SearchMatches groups the combined search results by kind.
type SearchMatches struct {
	Artists []Artist `json:"artists"`
	Tracks  []Track  `json:"tracks"`
	Albums  []Album  `json:"albums"`
	Top     Result   `json:"top"`
}

// SearchResult is the merged outcome of Search.
type SearchResult struct {
	Meta   Meta          `json:"meta"`
	Result SearchMatches `json:"result"`
}
