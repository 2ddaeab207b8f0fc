package filter

import "github.com/s0up4200/lfm/lastfm"

// Item is the flat view of a search result that filter expressions see.
type Item struct {
	Type      string
	Name      string
	Artist    string
	Album     string
	Listeners int
	Playcount int
	Duration  int
	Images    []string
	Tags      []string
}

// ItemFrom flattens a normalized artist, album or track.
func ItemFrom(r lastfm.Result) Item {
	switch v := r.(type) {
	case lastfm.Artist:
		return Item{
			Type:      string(lastfm.TypeArtist),
			Name:      v.Name,
			Artist:    v.Name,
			Listeners: v.Listeners,
			Playcount: v.Playcount,
			Images:    v.Images,
			Tags:      v.Tags,
		}
	case lastfm.Album:
		return Item{
			Type:      string(lastfm.TypeAlbum),
			Name:      v.Name,
			Artist:    v.ArtistName,
			Album:     v.Name,
			Listeners: v.Listeners,
			Playcount: v.Playcount,
			Images:    v.Images,
			Tags:      v.Tags,
		}
	case lastfm.Track:
		return Item{
			Type:      string(lastfm.TypeTrack),
			Name:      v.Name,
			Artist:    v.ArtistName,
			Album:     v.AlbumName,
			Listeners: v.Listeners,
			Playcount: v.Playcount,
			Duration:  v.Duration,
			Images:    v.Images,
			Tags:      v.Tags,
		}
	case nil:
		return Item{}
	default:
		return Item{Type: string(r.Kind()), Name: r.Title(), Listeners: r.ListenerCount()}
	}
}
