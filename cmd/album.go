package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/lastfm"
)

// albumCmd groups the album lookups
var albumCmd = &cobra.Command{
	Use:   "album",
	Short: "Look up albums",
}

var albumInfoCmd = &cobra.Command{
	Use:   "info <artist> <album> | info <mbid>",
	Short: "Show album information and track list",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := albumParams(args)
		p.Username = username
		p.Lang = lang
		return printLookup(client.AlbumInfo(cmd.Context(), p))
	},
}

var albumTopTagsCmd = &cobra.Command{
	Use:   "top-tags <artist> <album> | top-tags <mbid>",
	Short: "List the album's top tags",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.AlbumTopTags(cmd.Context(), albumParams(args)))
	},
}

var albumSearchCmd = &cobra.Command{
	Use:   "search <album>",
	Short: "Search for albums by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.AlbumSearch(cmd.Context(), args[0], paging()))
	},
}

func init() {
	rootCmd.AddCommand(albumCmd)
	albumCmd.AddCommand(albumInfoCmd, albumTopTagsCmd, albumSearchCmd)

	albumInfoCmd.Flags().StringVarP(&username, "username", "u", "", "include the user's play count")
	albumInfoCmd.Flags().StringVar(&lang, "lang", "", "wiki language (ISO 639 alpha-2)")
	addPagingFlags(albumSearchCmd)
}

// albumParams reads either a single MBID or an artist and album pair.
// Missing names are left empty so the client reports them.
func albumParams(args []string) lastfm.AlbumParams {
	if len(args) == 1 && lastfm.IsMBID(args[0]) {
		return lastfm.AlbumParams{MBID: args[0]}
	}
	p := lastfm.AlbumParams{Artist: args[0]}
	if len(args) > 1 {
		p.Album = args[1]
	}
	return p
}
