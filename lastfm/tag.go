package lastfm

import (
	"context"
	"net/url"
)

// TagInfo returns the reach, usage count and wiki summary of a tag
func (c *Client) TagInfo(ctx context.Context, p TagParams) (*Tag, error) {
	if err := p.validate(MethodTagInfo); err != nil {
		return nil, err
	}

	var payload tagInfoPayload
	if err := c.call(ctx, MethodTagInfo, p.values(), &payload); err != nil {
		return nil, err
	}
	return normalizeTagInfo(payload), nil
}

// TagSimilar returns tags similar to the given one
func (c *Client) TagSimilar(ctx context.Context, p TagParams) (*TagList, error) {
	if err := p.validate(MethodTagSimilar); err != nil {
		return nil, err
	}
	return fetch[TagList](ctx, c, MethodTagSimilar, p.values())
}

// TagTopAlbums returns the top albums tagged with a tag
func (c *Client) TagTopAlbums(ctx context.Context, p TagParams) (*AlbumList, error) {
	if err := p.validate(MethodTagTopAlbums); err != nil {
		return nil, err
	}
	return fetch[AlbumList](ctx, c, MethodTagTopAlbums, p.values())
}

// TagTopArtists returns the top artists tagged with a tag
func (c *Client) TagTopArtists(ctx context.Context, p TagParams) (*ArtistList, error) {
	if err := p.validate(MethodTagTopArtists); err != nil {
		return nil, err
	}
	return fetch[ArtistList](ctx, c, MethodTagTopArtists, p.values())
}

// TagTopTags returns the most used tags site-wide
func (c *Client) TagTopTags(ctx context.Context, page Paging) (*TagList, error) {
	return fetch[TagList](ctx, c, MethodTagTopTags, pageValues(page))
}

// TagTopTracks returns the top tracks tagged with a tag
func (c *Client) TagTopTracks(ctx context.Context, p TagParams) (*TrackList, error) {
	if err := p.validate(MethodTagTopTracks); err != nil {
		return nil, err
	}
	return fetch[TrackList](ctx, c, MethodTagTopTracks, p.values())
}

// TagWeeklyChartList returns the weekly chart ranges available for a tag
func (c *Client) TagWeeklyChartList(ctx context.Context, tag string) (*WeeklyChartList, error) {
	if err := requireAll(MethodTagWeeklyChartList, "tag", tag); err != nil {
		return nil, err
	}
	return fetch[WeeklyChartList](ctx, c, MethodTagWeeklyChartList, url.Values{"tag": {tag}})
}
