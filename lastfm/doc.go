// Package lastfm provides a client for the Last.fm 2.0 REST API.
//
// The client covers the read-only album, artist, chart, geo, tag and track
// methods. Each call validates its identifying parameters, performs a single
// GET request and either normalizes the payload or returns it in the API's
// own shape.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the HTTP dispatcher shared by every method
//   - Method: the fixed table of API method names and result fields
//   - Wire types: decoding helpers for the API's inconsistent JSON
//     (numbers as strings, single objects in place of arrays)
//   - Normalized types: Artist, Album, Track, Tag, Correction and Results
//   - Search: a combined artist, track and album search
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := lastfm.NewClient(
//		"your-api-key",
//		logger,
//		lastfm.WithUserAgent("myapp/1.0"),
//		lastfm.WithMinArtistListeners(1000),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	artist, err := client.ArtistInfo(ctx, lastfm.ArtistParams{Artist: "Cher"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Search(ctx, lastfm.SearchParams{Query: "believe", Limit: 5})
//
// # Images
//
// Image lists are flattened to URLs ordered largest first (mega,
// extralarge, large, medium, small). Images without a size come last and
// images without a URL are dropped.
//
// # Error Handling
//
// The package defines three error types:
//
//   - MissingParameterError: a required parameter was empty, no request was made
//   - TransportError: the request failed, timed out or returned an unreadable body
//   - APIError: Last.fm answered with an error code and message
//
// API errors include helper methods for classification:
//
//	var apiErr *lastfm.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// unknown artist
//	}
package lastfm
