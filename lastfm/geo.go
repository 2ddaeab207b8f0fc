package lastfm

import "context"

// GeoTopArtists returns the most popular artists in a country
func (c *Client) GeoTopArtists(ctx context.Context, p GeoParams) (*ArtistList, error) {
	if err := p.validate(MethodGeoTopArtists); err != nil {
		return nil, err
	}
	p.Location = ""
	return fetch[ArtistList](ctx, c, MethodGeoTopArtists, p.values())
}

// GeoTopTracks returns the most popular tracks in a country, optionally
// narrowed to a metro location
func (c *Client) GeoTopTracks(ctx context.Context, p GeoParams) (*TrackList, error) {
	if err := p.validate(MethodGeoTopTracks); err != nil {
		return nil, err
	}
	return fetch[TrackList](ctx, c, MethodGeoTopTracks, p.values())
}
