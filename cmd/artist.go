package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/lastfm"
)

var (
	username string
	lang     string
)

// artistCmd groups the artist lookups
var artistCmd = &cobra.Command{
	Use:   "artist",
	Short: "Look up artists",
	Long: `Look up artist information, similar artists and top albums, tags and tracks.

An argument that is a MusicBrainz ID is sent as an MBID instead of a name.`,
}

var artistInfoCmd = &cobra.Command{
	Use:   "info <artist|mbid>",
	Short: "Show artist information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := artistParams(args[0])
		p.Username = username
		p.Lang = lang
		return printLookup(client.ArtistInfo(cmd.Context(), p))
	},
}

var artistSimilarCmd = &cobra.Command{
	Use:   "similar <artist|mbid>",
	Short: "List similar artists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ArtistSimilar(cmd.Context(), artistPage(args[0])))
	},
}

var artistTopAlbumsCmd = &cobra.Command{
	Use:   "top-albums <artist|mbid>",
	Short: "List the artist's top albums",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ArtistTopAlbums(cmd.Context(), artistPage(args[0])))
	},
}

var artistTopTagsCmd = &cobra.Command{
	Use:   "top-tags <artist|mbid>",
	Short: "List the artist's top tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ArtistTopTags(cmd.Context(), artistParams(args[0])))
	},
}

var artistTopTracksCmd = &cobra.Command{
	Use:   "top-tracks <artist|mbid>",
	Short: "List the artist's top tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ArtistTopTracks(cmd.Context(), artistPage(args[0])))
	},
}

var artistSearchCmd = &cobra.Command{
	Use:   "search <artist>",
	Short: "Search for artists by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ArtistSearch(cmd.Context(), args[0], paging()))
	},
}

var artistCorrectionCmd = &cobra.Command{
	Use:   "correction <artist>",
	Short: "Show the canonical spelling of an artist name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ArtistCorrection(cmd.Context(), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(artistCmd)
	artistCmd.AddCommand(artistInfoCmd, artistSimilarCmd, artistTopAlbumsCmd, artistTopTagsCmd,
		artistTopTracksCmd, artistSearchCmd, artistCorrectionCmd)

	artistInfoCmd.Flags().StringVarP(&username, "username", "u", "", "include the user's play count")
	artistInfoCmd.Flags().StringVar(&lang, "lang", "", "biography language (ISO 639 alpha-2)")

	for _, c := range []*cobra.Command{artistSimilarCmd, artistTopAlbumsCmd, artistTopTracksCmd, artistSearchCmd} {
		addPagingFlags(c)
	}
}

// artistParams sends arg as an MBID when it parses as one
func artistParams(arg string) lastfm.ArtistParams {
	if lastfm.IsMBID(arg) {
		return lastfm.ArtistParams{MBID: arg}
	}
	return lastfm.ArtistParams{Artist: arg}
}

func artistPage(arg string) lastfm.ArtistParams {
	p := artistParams(arg)
	p.Paging = paging()
	return p
}

// printLookup prints the result of a client call or returns its error
func printLookup[T any](v *T, err error) error {
	if err != nil {
		return err
	}
	return printResult(v)
}
