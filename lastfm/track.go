package lastfm

import (
	"context"
	"net/url"
)

// TrackSearchParams narrows a track search, optionally to one artist.
type TrackSearchParams struct {
	Track  string
	Artist string
	Paging
}

// TrackInfo returns metadata, album, tags and wiki summary of a track
func (c *Client) TrackInfo(ctx context.Context, p TrackParams) (*Track, error) {
	if err := p.validate(MethodTrackInfo); err != nil {
		return nil, err
	}

	var payload trackInfoPayload
	if err := c.call(ctx, MethodTrackInfo, p.values(), &payload); err != nil {
		return nil, err
	}
	return normalizeTrackInfo(payload), nil
}

// TrackCorrection returns the canonical spelling of a track and its artist,
// or nil when Last.fm has no correction for it.
func (c *Client) TrackCorrection(ctx context.Context, artist, track string) (*Correction, error) {
	if err := requireAll(MethodTrackCorrection, "artist", artist, "track", track); err != nil {
		return nil, err
	}

	var payload correctionPayload
	params := url.Values{"artist": {artist}, "track": {track}}
	if err := c.call(ctx, MethodTrackCorrection, params, &payload); err != nil {
		return nil, err
	}
	return normalizeCorrection(payload), nil
}

// TrackSimilar returns tracks similar to the given one
func (c *Client) TrackSimilar(ctx context.Context, p TrackParams) (*TrackList, error) {
	if err := p.validate(MethodTrackSimilar); err != nil {
		return nil, err
	}
	return fetch[TrackList](ctx, c, MethodTrackSimilar, p.values())
}

// TrackTopTags returns the most applied tags of a track
func (c *Client) TrackTopTags(ctx context.Context, p TrackParams) (*TagList, error) {
	if err := p.validate(MethodTrackTopTags); err != nil {
		return nil, err
	}
	return fetch[TagList](ctx, c, MethodTrackTopTags, p.values())
}

// TrackSearch searches tracks by title
func (c *Client) TrackSearch(ctx context.Context, p TrackSearchParams) (*Results[Track], error) {
	if err := requireAll(MethodTrackSearch, "track", p.Track); err != nil {
		return nil, err
	}

	params := url.Values{"track": {p.Track}}
	setString(params, "artist", p.Artist)
	p.Paging.apply(params)

	var payload trackSearchPayload
	if err := c.call(ctx, MethodTrackSearch, params, &payload); err != nil {
		return nil, err
	}
	return &Results[Track]{
		Meta:   parseMeta(payload.pageInfo, p.Track),
		Result: c.parseTracks(payload.Matches.Track),
	}, nil
}
