package lastfm

import (
	"context"
	"net/url"
)

// AlbumInfo returns metadata, tags, wiki summary and track listing of an album
func (c *Client) AlbumInfo(ctx context.Context, p AlbumParams) (*Album, error) {
	if err := p.validate(MethodAlbumInfo); err != nil {
		return nil, err
	}

	var payload albumInfoPayload
	if err := c.call(ctx, MethodAlbumInfo, p.values(), &payload); err != nil {
		return nil, err
	}
	return normalizeAlbumInfo(payload), nil
}

// AlbumTopTags returns the most applied tags of an album
func (c *Client) AlbumTopTags(ctx context.Context, p AlbumParams) (*TagList, error) {
	if err := p.validate(MethodAlbumTopTags); err != nil {
		return nil, err
	}
	return fetch[TagList](ctx, c, MethodAlbumTopTags, p.values())
}

// AlbumSearch searches albums by title
func (c *Client) AlbumSearch(ctx context.Context, album string, page Paging) (*Results[Album], error) {
	if err := requireAll(MethodAlbumSearch, "album", album); err != nil {
		return nil, err
	}

	params := url.Values{"album": {album}}
	page.apply(params)

	var payload albumSearchPayload
	if err := c.call(ctx, MethodAlbumSearch, params, &payload); err != nil {
		return nil, err
	}
	return &Results[Album]{
		Meta:   parseMeta(payload.pageInfo, album),
		Result: c.parseAlbums(payload.Matches.Album),
	}, nil
}
