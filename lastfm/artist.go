package lastfm

import (
	"context"
	"net/url"
)

// ArtistInfo returns metadata, tags, biography summary and similar artists
func (c *Client) ArtistInfo(ctx context.Context, p ArtistParams) (*Artist, error) {
	if err := p.validate(MethodArtistInfo); err != nil {
		return nil, err
	}

	var payload artistInfoPayload
	if err := c.call(ctx, MethodArtistInfo, p.values(), &payload); err != nil {
		return nil, err
	}
	return normalizeArtistInfo(payload), nil
}

// ArtistCorrection returns the canonical spelling of an artist name, or
// nil when Last.fm has no correction for it.
func (c *Client) ArtistCorrection(ctx context.Context, artist string) (*Correction, error) {
	if err := requireAll(MethodArtistCorrection, "artist", artist); err != nil {
		return nil, err
	}

	var payload correctionPayload
	if err := c.call(ctx, MethodArtistCorrection, url.Values{"artist": {artist}}, &payload); err != nil {
		return nil, err
	}
	return normalizeCorrection(payload), nil
}

// ArtistSimilar returns artists similar to the given one
func (c *Client) ArtistSimilar(ctx context.Context, p ArtistParams) (*ArtistList, error) {
	if err := p.validate(MethodArtistSimilar); err != nil {
		return nil, err
	}
	return fetch[ArtistList](ctx, c, MethodArtistSimilar, p.values())
}

// ArtistTopAlbums returns one page of an artist's albums ranked by playcount
func (c *Client) ArtistTopAlbums(ctx context.Context, p ArtistParams) (*Results[Album], error) {
	if err := p.validate(MethodArtistTopAlbums); err != nil {
		return nil, err
	}

	list, err := fetch[AlbumList](ctx, c, MethodArtistTopAlbums, p.values())
	if err != nil {
		return nil, err
	}
	return &Results[Album]{
		Meta:   parseMeta(pageInfo{Attr: &list.Attr}, p.Artist),
		Result: c.parseAlbums(list.Album),
	}, nil
}

// ArtistTopTags returns the most applied tags of an artist
func (c *Client) ArtistTopTags(ctx context.Context, p ArtistParams) (*TagList, error) {
	if err := p.validate(MethodArtistTopTags); err != nil {
		return nil, err
	}
	return fetch[TagList](ctx, c, MethodArtistTopTags, p.values())
}

// ArtistTopTracks returns one page of an artist's tracks ranked by playcount
func (c *Client) ArtistTopTracks(ctx context.Context, p ArtistParams) (*Results[Track], error) {
	if err := p.validate(MethodArtistTopTracks); err != nil {
		return nil, err
	}

	list, err := fetch[TrackList](ctx, c, MethodArtistTopTracks, p.values())
	if err != nil {
		return nil, err
	}
	return &Results[Track]{
		Meta:   parseMeta(pageInfo{Attr: &list.Attr}, p.Artist),
		Result: c.parseTracks(list.Track),
	}, nil
}

// ArtistSearch searches artists by name
func (c *Client) ArtistSearch(ctx context.Context, artist string, page Paging) (*Results[Artist], error) {
	if err := requireAll(MethodArtistSearch, "artist", artist); err != nil {
		return nil, err
	}

	params := url.Values{"artist": {artist}}
	page.apply(params)

	var payload artistSearchPayload
	if err := c.call(ctx, MethodArtistSearch, params, &payload); err != nil {
		return nil, err
	}
	return &Results[Artist]{
		Meta:   parseMeta(payload.pageInfo, artist),
		Result: c.parseArtists(payload.Matches.Artist),
	}, nil
}
