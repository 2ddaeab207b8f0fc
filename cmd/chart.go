package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/lastfm"
)

var location string

// chartCmd groups the global charts
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show global Last.fm charts",
}

var chartArtistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "Top artists chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ChartTopArtists(cmd.Context(), paging()))
	},
}

var chartTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Top tags chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ChartTopTags(cmd.Context(), paging()))
	},
}

var chartTracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Top tracks chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.ChartTopTracks(cmd.Context(), paging()))
	},
}

// geoCmd groups the per-country charts
var geoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Show charts for a country",
	Long:  `Show the most popular artists or tracks in a country. Countries are ISO 3166-1 names such as "Germany".`,
}

var geoArtistsCmd = &cobra.Command{
	Use:   "artists <country>",
	Short: "Top artists in a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.GeoTopArtists(cmd.Context(), geoParams(args[0])))
	},
}

var geoTracksCmd = &cobra.Command{
	Use:   "tracks <country>",
	Short: "Top tracks in a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(client.GeoTopTracks(cmd.Context(), geoParams(args[0])))
	},
}

func init() {
	rootCmd.AddCommand(chartCmd, geoCmd)
	chartCmd.AddCommand(chartArtistsCmd, chartTagsCmd, chartTracksCmd)
	geoCmd.AddCommand(geoArtistsCmd, geoTracksCmd)

	geoTracksCmd.Flags().StringVar(&location, "location", "", "metro area within the country")
	for _, c := range []*cobra.Command{chartArtistsCmd, chartTagsCmd, chartTracksCmd, geoArtistsCmd, geoTracksCmd} {
		addPagingFlags(c)
	}
}

func geoParams(country string) lastfm.GeoParams {
	return lastfm.GeoParams{Country: country, Location: location, Paging: paging()}
}
