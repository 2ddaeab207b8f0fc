package lastfm

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SearchParams configures Search. The per-category limits override Limit.
type SearchParams struct {
	Query       string
	Page        int
	Limit       int
	ArtistLimit int
	TrackLimit  int
	AlbumLimit  int
}

func (p SearchParams) paging(limit int) Paging {
	if limit <= 0 {
		limit = p.Limit
	}
	return Paging{Page: p.Page, Limit: limit}
}

// Search runs an artist, track and album search for the same query in
// parallel and merges them. The first failing search cancels the others
// and its error is returned.
func (c *Client) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	if strings.TrimSpace(p.Query) == "" {
		return nil, &MissingParameterError{Method: "search", Params: []string{"q"}}
	}

	var (
		artists *Results[Artist]
		tracks  *Results[Track]
		albums  *Results[Album]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artists, err = c.ArtistSearch(gctx, p.Query, p.paging(p.ArtistLimit))
		return err
	})
	g.Go(func() error {
		var err error
		tracks, err = c.TrackSearch(gctx, TrackSearchParams{Track: p.Query, Paging: p.paging(p.TrackLimit)})
		return err
	})
	g.Go(func() error {
		var err error
		albums, err = c.AlbumSearch(gctx, p.Query, p.paging(p.AlbumLimit))
		return err
	})

	if err := g.Wait(); err != nil {
		c.logger.Debug().Err(err).Str("query", p.Query).Msg("Search failed")
		return nil, err
	}

	result := &SearchResult{
		Meta: Meta{
			Query:      p.Query,
			Page:       artists.Meta.Page,
			PerPage:    artists.Meta.PerPage + tracks.Meta.PerPage + albums.Meta.PerPage,
			Total:      artists.Meta.Total + tracks.Meta.Total + albums.Meta.Total,
			TotalPages: max(artists.Meta.TotalPages, tracks.Meta.TotalPages, albums.Meta.TotalPages),
		},
		Result: SearchMatches{
			Artists: artists.Result,
			Tracks:  tracks.Result,
			Albums:  albums.Result,
		},
	}
	result.Result.Top = TopResult(p.Query, result.Result.Artists, result.Result.Tracks, result.Result.Albums)

	c.logger.Debug().
		Str("query", p.Query).
		Int("artists", len(artists.Result)).
		Int("tracks", len(tracks.Result)).
		Int("albums", len(albums.Result)).
		Msg("Search completed")

	return result, nil
}

// TopResult picks the most relevant entry for query. A case-insensitive
// exact name match wins, highest listener count first; albums rank with
// zero listeners. Without an exact match the artist or track with the most
// listeners is returned. Ties keep the earlier entry. Returns nil when
// there is no candidate.
func TopResult(query string, artists []Artist, tracks []Track, albums []Album) Result {
	candidates := make([]Result, 0, len(artists)+len(tracks)+len(albums))
	for _, a := range artists {
		candidates = append(candidates, a)
	}
	for _, t := range tracks {
		candidates = append(candidates, t)
	}

	var top Result
	for _, r := range candidates {
		if strings.EqualFold(r.Title(), query) && (top == nil || r.ListenerCount() > top.ListenerCount()) {
			top = r
		}
	}
	for _, a := range albums {
		if strings.EqualFold(a.Title(), query) && top == nil {
			top = a
		}
	}
	if top != nil {
		return top
	}

	for _, r := range candidates {
		if top == nil || r.ListenerCount() > top.ListenerCount() {
			top = r
		}
	}
	return top
}
