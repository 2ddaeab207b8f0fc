package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/config"
	"github.com/s0up4200/lfm/filter"
	"github.com/s0up4200/lfm/lastfm"
)

var (
	filterExpr  string
	preset      string
	artistLimit int
	trackLimit  int
	albumLimit  int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search artists, tracks and albums at once",
	Long: `Search artists, tracks and albums in parallel and pick a top result.

Results can be narrowed with a filter expression or a preset from the
config file, for example:

  lfm search cher --filter 'isTrack() and Listeners > 100000'
  lfm search cher --filter 'hasPrefix(Name, "bel") and hasTag("pop")'
  lfm search cher --preset popular

Fields: Type, Name, Artist, Album, Listeners, Playcount, Duration,
Images, Tags. Helpers: containsText, hasPrefix, hasSuffix (case
insensitive), lower, upper, hasTag, hasImage, isArtist, isAlbum,
isTrack.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	searchCmd.Flags().IntVar(&page, "page", 0, "page number")
	searchCmd.Flags().IntVarP(&limit, "limit", "l", 0, "results per category")
	searchCmd.Flags().IntVar(&artistLimit, "artist-limit", 0, "artist results (overrides --limit)")
	searchCmd.Flags().IntVar(&trackLimit, "track-limit", 0, "track results (overrides --limit)")
	searchCmd.Flags().IntVar(&albumLimit, "album-limit", 0, "album results (overrides --limit)")
	searchCmd.MarkFlagsMutuallyExclusive("filter", "preset")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	var manager *filter.Manager
	if filterExpr != "" || preset != "" {
		var err error
		manager, err = newFilterManager(cfg.Filter)
		if err != nil {
			return err
		}
	}

	logger.Debug().Str("query", query).Str("filter", filterExpr).Str("preset", preset).Msg("Searching")

	result, err := client.Search(cmd.Context(), lastfm.SearchParams{
		Query:       query,
		Page:        page,
		Limit:       limit,
		ArtistLimit: artistLimit,
		TrackLimit:  trackLimit,
		AlbumLimit:  albumLimit,
	})
	if err != nil {
		return err
	}

	switch {
	case filterExpr != "":
		result, err = manager.ApplyExpression(filterExpr, result)
	case preset != "":
		// viper lowercases map keys
		result, err = manager.ApplyPreset(strings.ToLower(preset), result)
	}
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	return printResult(result)
}

// newFilterManager compiles the configured presets
func newFilterManager(fc config.FilterConfig) (*filter.Manager, error) {
	manager := filter.NewManager(filter.WithCompiler(filter.NewExprCompiler(filter.WithCache(fc.CacheSize))))
	if err := manager.RegisterFilters(fc.Presets); err != nil {
		return nil, fmt.Errorf("failed to load filter presets: %w", err)
	}
	return manager, nil
}
