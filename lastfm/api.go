package lastfm

import (
	"context"
)

// API defines the interface for Last.fm lookups. *Client implements it.
type API interface {
	// TestConnection verifies the key is accepted
	TestConnection(ctx context.Context) error

	AlbumInfo(ctx context.Context, p AlbumParams) (*Album, error)
	AlbumTopTags(ctx context.Context, p AlbumParams) (*TagList, error)
	AlbumSearch(ctx context.Context, album string, page Paging) (*Results[Album], error)

	ArtistInfo(ctx context.Context, p ArtistParams) (*Artist, error)
	ArtistCorrection(ctx context.Context, artist string) (*Correction, error)
	ArtistSimilar(ctx context.Context, p ArtistParams) (*ArtistList, error)
	ArtistTopAlbums(ctx context.Context, p ArtistParams) (*Results[Album], error)
	ArtistTopTags(ctx context.Context, p ArtistParams) (*TagList, error)
	ArtistTopTracks(ctx context.Context, p ArtistParams) (*Results[Track], error)
	ArtistSearch(ctx context.Context, artist string, page Paging) (*Results[Artist], error)

	ChartTopArtists(ctx context.Context, page Paging) (*ArtistList, error)
	ChartTopTags(ctx context.Context, page Paging) (*TagList, error)
	ChartTopTracks(ctx context.Context, page Paging) (*TrackList, error)

	GeoTopArtists(ctx context.Context, p GeoParams) (*ArtistList, error)
	GeoTopTracks(ctx context.Context, p GeoParams) (*TrackList, error)

	TagInfo(ctx context.Context, p TagParams) (*Tag, error)
	TagSimilar(ctx context.Context, p TagParams) (*TagList, error)
	TagTopAlbums(ctx context.Context, p TagParams) (*AlbumList, error)
	TagTopArtists(ctx context.Context, p TagParams) (*ArtistList, error)
	TagTopTags(ctx context.Context, page Paging) (*TagList, error)
	TagTopTracks(ctx context.Context, p TagParams) (*TrackList, error)
	TagWeeklyChartList(ctx context.Context, tag string) (*WeeklyChartList, error)

	TrackInfo(ctx context.Context, p TrackParams) (*Track, error)
	TrackCorrection(ctx context.Context, artist, track string) (*Correction, error)
	TrackSimilar(ctx context.Context, p TrackParams) (*TrackList, error)
	TrackTopTags(ctx context.Context, p TrackParams) (*TagList, error)
	TrackSearch(ctx context.Context, p TrackSearchParams) (*Results[Track], error)

	// Search runs the combined artist, track and album search
	Search(ctx context.Context, p SearchParams) (*SearchResult, error)
}

var _ API = (*Client)(nil)
