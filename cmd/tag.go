package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/lastfm"
)

// tagCmd groups the tag lookups
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Look up tags",
}

var tagInfoCmd = &cobra.Command{
	Use:   "info <tag>",
	Short: "Show tag information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TagInfo(cmd.Context(), lastfm.TagParams{Tag: args[0], Lang: lang}))
	},
}

var tagSimilarCmd = &cobra.Command{
	Use:   "similar <tag>",
	Short: "List similar tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TagSimilar(cmd.Context(), tagPage(args[0])))
	},
}

var tagTopAlbumsCmd = &cobra.Command{
	Use:   "top-albums <tag>",
	Short: "List the top albums for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TagTopAlbums(cmd.Context(), tagPage(args[0])))
	},
}

var tagTopArtistsCmd = &cobra.Command{
	Use:   "top-artists <tag>",
	Short: "List the top artists for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TagTopArtists(cmd.Context(), tagPage(args[0])))
	},
}

var tagTopTracksCmd = &cobra.Command{
	Use:   "top-tracks <tag>",
	Short: "List the top tracks for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TagTopTracks(cmd.Context(), tagPage(args[0])))
	},
}

var tagWeeklyChartsCmd = &cobra.Command{
	Use:   "weekly-charts <tag>",
	Short: "List the weekly chart ranges available for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TagWeeklyChartList(cmd.Context(), args[0]))
	},
}

var tagTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most used tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.TagTopTags(cmd.Context(), paging()))
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagInfoCmd, tagSimilarCmd, tagTopAlbumsCmd, tagTopArtistsCmd,
		tagTopTracksCmd, tagWeeklyChartsCmd, tagTopCmd)

	tagInfoCmd.Flags().StringVar(&lang, "lang", "", "wiki language (ISO 639 alpha-2)")
	for _, c := range []*cobra.Command{tagSimilarCmd, tagTopAlbumsCmd, tagTopArtistsCmd, tagTopTracksCmd, tagTopCmd} {
		addPagingFlags(c)
	}
}

func tagPage(tag string) lastfm.TagParams {
	return lastfm.TagParams{Tag: tag, Paging: paging()}
}
