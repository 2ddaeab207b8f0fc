package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/config"
	"github.com/s0up4200/lfm/lastfm"
	"github.com/s0up4200/lfm/render"
)

// annotationNoClient marks commands that run without a Last.fm API key
const annotationNoClient = "lfm/no-client"

var (
	cfgFile      string
	outputFormat string
	apiKey       string

	cfg       *config.Config
	logger    zerolog.Logger
	logCloser io.Closer
	client    *lastfm.Client

	// Paging flags shared by list commands
	page  int
	limit int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lfm",
	Short: "Look up artists, albums, tracks and tags on Last.fm",
	Long: `lfm is a CLI for the Last.fm music metadata API.

It fetches artist, album, track and tag information, charts and
search results, and prints them as a tree, JSON or YAML. It can also
serve the same lookups as a small JSON API.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: closeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Last.fm API key (overrides config)")

	rootCmd.AddCommand(testCmd)
}

// initializeApp loads the configuration, sets up logging and creates the
// Last.fm client for commands that need one
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	if cmd.Flags().Changed("api-key") {
		cfg.LastFM.APIKey = apiKey
	}

	logger, logCloser = setupLogger(cfg.Logging)

	if !needsClient(cmd) {
		return nil
	}

	if err := cfg.ValidateAPIKey(); err != nil {
		return err
	}

	client, err = newClient(cfg.LastFM)
	if err != nil {
		return fmt.Errorf("failed to create Last.fm client: %w", err)
	}

	return nil
}

// needsClient reports whether cmd calls Last.fm. Cobra's generated help
// and completion commands never do.
func needsClient(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationNoClient] == "true" {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func closeApp(cmd *cobra.Command, args []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// newClient builds a Last.fm client from the lastfm config section
func newClient(lc config.LastFMConfig) (*lastfm.Client, error) {
	userAgent := lc.UserAgent
	if userAgent == "" {
		userAgent = "lfm/" + appVersion
	}

	return lastfm.NewClient(lc.APIKey, logger,
		lastfm.WithUserAgent(userAgent),
		lastfm.WithBaseURL(lc.BaseURL),
		lastfm.WithTimeout(lc.Timeout),
		lastfm.WithMinArtistListeners(lc.MinArtistListeners),
		lastfm.WithMinTrackListeners(lc.MinTrackListeners),
	)
}

// printResult writes v to stdout in the configured output format
func printResult(v any) error {
	return render.Write(os.Stdout, cfg.Output.Format, v)
}

// addPagingFlags registers --page and --limit on a list command
func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&page, "page", 0, "page number (API default 1)")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page (API default 50)")
}

func paging() lastfm.Paging {
	return lastfm.Paging{Page: page, Limit: limit}
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to Last.fm",
	Long:  `Send a minimal request to Last.fm to check that the API is reachable and the API key is accepted.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Last.fm at %s...\n", cfg.LastFM.BaseURL)

	if err := client.TestConnection(cmd.Context()); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- Timeout: %s\n", cfg.LastFM.Timeout)
	fmt.Printf("- Minimum artist listeners: %d\n", cfg.LastFM.MinArtistListeners)
	fmt.Printf("- Minimum track listeners: %d\n", cfg.LastFM.MinTrackListeners)

	if len(cfg.Filter.Presets) > 0 {
		fmt.Printf("- Filter presets: %d\n", len(cfg.Filter.Presets))
	}

	return nil
}
