package lastfm

import (
	"context"
	"net/url"
)

func pageValues(page Paging) url.Values {
	v := url.Values{}
	page.apply(v)
	return v
}

// ChartTopArtists returns the global artist chart
func (c *Client) ChartTopArtists(ctx context.Context, page Paging) (*ArtistList, error) {
	return fetch[ArtistList](ctx, c, MethodChartTopArtists, pageValues(page))
}

// ChartTopTags returns the global tag chart
func (c *Client) ChartTopTags(ctx context.Context, page Paging) (*TagList, error) {
	return fetch[TagList](ctx, c, MethodChartTopTags, pageValues(page))
}

// ChartTopTracks returns the global track chart
func (c *Client) ChartTopTracks(ctx context.Context, page Paging) (*TrackList, error) {
	return fetch[TrackList](ctx, c, MethodChartTopTracks, pageValues(page))
}
