package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/lastfm"
)

var trackArtist string

// trackCmd groups the track lookups
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Look up tracks",
}

var trackInfoCmd = &cobra.Command{
	Use:   "info <artist> <track> | info <mbid>",
	Short: "Show track information",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := trackParams(args)
		p.Username = username
		return printLookup(client.TrackInfo(cmd.Context(), p))
	},
}

var trackSimilarCmd = &cobra.Command{
	Use:   "similar <artist> <track> | similar <mbid>",
	Short: "List similar tracks",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := trackParams(args)
		p.Paging = paging()
		return printLookup(client.TrackSimilar(cmd.Context(), p))
	},
}

var trackTopTagsCmd = &cobra.Command{
	Use:   "top-tags <artist> <track> | top-tags <mbid>",
	Short: "List the track's top tags",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TrackTopTags(cmd.Context(), trackParams(args)))
	},
}

var trackCorrectionCmd = &cobra.Command{
	Use:   "correction <artist> <track>",
	Short: "Show the canonical spelling of an artist and track",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TrackCorrection(cmd.Context(), args[0], args[1]))
	},
}

var trackSearchCmd = &cobra.Command{
	Use:   "search <track>",
	Short: "Search for tracks by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TrackSearch(cmd.Context(), lastfm.TrackSearchParams{
			Track:  args[0],
			Artist: trackArtist,
			Paging: paging(),
		}))
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(trackInfoCmd, trackSimilarCmd, trackTopTagsCmd, trackCorrectionCmd, trackSearchCmd)

	trackInfoCmd.Flags().StringVarP(&username, "username", "u", "", "include the user's play count")
	trackSearchCmd.Flags().StringVarP(&trackArtist, "artist", "a", "", "narrow the search to an artist")
	addPagingFlags(trackSimilarCmd)
	addPagingFlags(trackSearchCmd)
}

// trackParams reads either a single MBID or an artist and track pair
func trackParams(args []string) lastfm.TrackParams {
	if len(args) == 1 && lastfm.IsMBID(args[0]) {
		return lastfm.TrackParams{MBID: args[0]}
	}
	p := lastfm.TrackParams{Artist: args[0]}
	if len(args) > 1 {
		p.Track = args[1]
	}
	return p
}
