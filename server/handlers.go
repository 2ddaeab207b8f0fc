package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/s0up4200/lfm/filter"
	"github.com/s0up4200/lfm/lastfm"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := lastfm.SearchParams{
		Query:       q.Get("q"),
		Page:        queryInt(q, "page"),
		Limit:       queryInt(q, "limit"),
		ArtistLimit: queryInt(q, "artist_limit"),
		TrackLimit:  queryInt(q, "track_limit"),
		AlbumLimit:  queryInt(q, "album_limit"),
	}

	result, err := s.api.Search(r.Context(), params)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if s.filters != nil {
		switch {
		case q.Get("preset") != "":
			result, err = s.filters.ApplyPreset(strings.ToLower(q.Get("preset")), result)
		case q.Get("filter") != "":
			result, err = s.filters.ApplyExpression(q.Get("filter"), result)
		}
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleArtistInfo(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Artist, error) {
		return s.api.ArtistInfo(ctx, artistParams(r))
	})
}

func (s *Server) handleArtistSimilar(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.ArtistList, error) {
		return s.api.ArtistSimilar(ctx, artistParams(r))
	})
}

func (s *Server) handleArtistTopAlbums(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Results[lastfm.Album], error) {
		return s.api.ArtistTopAlbums(ctx, artistParams(r))
	})
}

func (s *Server) handleArtistTopTracks(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Results[lastfm.Track], error) {
		return s.api.ArtistTopTracks(ctx, artistParams(r))
	})
}

func (s *Server) handleArtistTopTags(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.TagList, error) {
		return s.api.ArtistTopTags(ctx, artistParams(r))
	})
}

func (s *Server) handleArtistCorrection(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Correction, error) {
		return s.api.ArtistCorrection(ctx, pathParam(r, "artist"))
	})
}

func (s *Server) handleAlbumInfo(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Album, error) {
		return s.api.AlbumInfo(ctx, albumParams(r))
	})
}

func (s *Server) handleAlbumTopTags(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.TagList, error) {
		return s.api.AlbumTopTags(ctx, albumParams(r))
	})
}

func (s *Server) handleTrackInfo(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Track, error) {
		return s.api.TrackInfo(ctx, trackParams(r))
	})
}

func (s *Server) handleTrackSimilar(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.TrackList, error) {
		return s.api.TrackSimilar(ctx, trackParams(r))
	})
}

func (s *Server) handleTrackTopTags(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.TagList, error) {
		return s.api.TrackTopTags(ctx, trackParams(r))
	})
}

func (s *Server) handleTrackCorrection(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Correction, error) {
		return s.api.TrackCorrection(ctx, pathParam(r, "artist"), pathParam(r, "track"))
	})
}

func (s *Server) handleTagInfo(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.Tag, error) {
		return s.api.TagInfo(ctx, tagParams(r))
	})
}

func (s *Server) handleTagSimilar(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.TagList, error) {
		return s.api.TagSimilar(ctx, tagParams(r))
	})
}

func (s *Server) handleTagTopAlbums(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.AlbumList, error) {
		return s.api.TagTopAlbums(ctx, tagParams(r))
	})
}

func (s *Server) handleTagTopArtists(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.ArtistList, error) {
		return s.api.TagTopArtists(ctx, tagParams(r))
	})
}

func (s *Server) handleTagTopTracks(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.TrackList, error) {
		return s.api.TagTopTracks(ctx, tagParams(r))
	})
}

func (s *Server) handleTagWeeklyCharts(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, func(ctx context.Context) (*lastfm.WeeklyChartList, error) {
		return s.api.TagWeeklyChartList(ctx, pathParam(r, "tag"))
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	page := paging(r.URL.Query())
	switch pathParam(r, "kind") {
	case "artists":
		respond(s, w, r, func(ctx context.Context) (*lastfm.ArtistList, error) {
			return s.api.ChartTopArtists(ctx, page)
		})
	case "tags":
		respond(s, w, r, func(ctx context.Context) (*lastfm.TagList, error) {
			return s.api.ChartTopTags(ctx, page)
		})
	case "tracks":
		respond(s, w, r, func(ctx context.Context) (*lastfm.TrackList, error) {
			return s.api.ChartTopTracks(ctx, page)
		})
	default:
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown chart"})
	}
}

func (s *Server) handleGeo(w http.ResponseWriter, r *http.Request) {
	params := lastfm.GeoParams{
		Country:  pathParam(r, "country"),
		Location: r.URL.Query().Get("location"),
		Paging:   paging(r.URL.Query()),
	}
	switch pathParam(r, "kind") {
	case "artists":
		respond(s, w, r, func(ctx context.Context) (*lastfm.ArtistList, error) {
			return s.api.GeoTopArtists(ctx, params)
		})
	case "tracks":
		respond(s, w, r, func(ctx context.Context) (*lastfm.TrackList, error) {
			return s.api.GeoTopTracks(ctx, params)
		})
	default:
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown geo chart"})
	}
}

// respond runs fn with the request context and writes its result as JSON
func respond[T any](s *Server, w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) (*T, error)) {
	result, err := fn(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeError maps client errors onto HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		missingErr   *lastfm.MissingParameterError
		apiErr       *lastfm.APIError
		transportErr *lastfm.TransportError
		compileErr   *filter.CompilationError
		evalErr      *filter.EvaluationError
	)

	status := http.StatusInternalServerError
	resp := errorResponse{Error: err.Error()}

	switch {
	case errors.As(err, &missingErr), errors.As(err, &compileErr), errors.As(err, &evalErr):
		status = http.StatusBadRequest
	case errors.As(err, &apiErr):
		resp.Code = apiErr.Code
		switch {
		case apiErr.IsNotFound():
			status = http.StatusNotFound
		case apiErr.IsRateLimited():
			status = http.StatusTooManyRequests
		default:
			status = http.StatusBadGateway
		}
	case errors.As(err, &transportErr):
		status = http.StatusBadGateway
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			status = http.StatusGatewayTimeout
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Int("status", status).Msg("Request failed")
	} else {
		s.logger.Debug().Err(err).Int("status", status).Msg("Request rejected")
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathParam returns an unescaped chi URL parameter
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func queryInt(q url.Values, key string) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func paging(q url.Values) lastfm.Paging {
	return lastfm.Paging{Page: queryInt(q, "page"), Limit: queryInt(q, "limit")}
}

// artistParams sends MBIDs as mbid and anything else as a name
func artistParams(r *http.Request) lastfm.ArtistParams {
	q := r.URL.Query()
	p := lastfm.ArtistParams{
		Username: q.Get("username"),
		Lang:     q.Get("lang"),
		Paging:   paging(q),
	}
	if id := pathParam(r, "artist"); lastfm.IsMBID(id) {
		p.MBID = id
	} else {
		p.Artist = id
	}
	return p
}

func albumParams(r *http.Request) lastfm.AlbumParams {
	q := r.URL.Query()
	return lastfm.AlbumParams{
		Artist:   pathParam(r, "artist"),
		Album:    pathParam(r, "album"),
		MBID:     q.Get("mbid"),
		Username: q.Get("username"),
		Lang:     q.Get("lang"),
	}
}

func trackParams(r *http.Request) lastfm.TrackParams {
	q := r.URL.Query()
	return lastfm.TrackParams{
		Artist:   pathParam(r, "artist"),
		Track:    pathParam(r, "track"),
		MBID:     q.Get("mbid"),
		Username: q.Get("username"),
		Paging:   paging(q),
	}
}

func tagParams(r *http.Request) lastfm.TagParams {
	q := r.URL.Query()
	return lastfm.TagParams{
		Tag:    pathParam(r, "tag"),
		Lang:   q.Get("lang"),
		Paging: paging(q),
	}
}
