package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

var (
	checkOnly bool
	assumeYes bool
)

var errDevBuild = errors.New("development builds cannot be updated")

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update lfm to the latest release",
	Long: `Check GitHub for a newer release of lfm and replace the running binary with it.

Use --check to only report whether an update is available.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoClient: "true"},
	RunE:        runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer version")
	updateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	current, err := parseVersion(appVersion)
	if err != nil {
		return err
	}

	logger.Debug().Str("repository", cfg.Update.Repository).Str("current", current.String()).Msg("Checking for updates")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(cfg.Update.Repository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s in %s", runtime.GOOS, runtime.GOARCH, cfg.Update.Repository)
	}

	next, err := parseVersion(latest.Version())
	if err != nil {
		return fmt.Errorf("release has an invalid version: %w", err)
	}

	if !next.GT(current) {
		fmt.Printf("✓ lfm %s is up to date\n", current)
		return nil
	}

	fmt.Printf("A new version is available: %s → %s\n", current, next)
	if latest.URL != "" {
		fmt.Printf("Release notes: %s\n", latest.URL)
	}

	if checkOnly {
		return nil
	}

	if !assumeYes {
		fmt.Printf("Update now? [y/N]: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			fmt.Println("Update cancelled.")
			return nil
		}
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	logger.Info().Str("version", next.String()).Str("path", exe).Msg("Updated lfm")
	fmt.Printf("✓ Updated to %s\n", next)

	return nil
}

// parseVersion accepts versions with or without a leading "v"
func parseVersion(v string) (semver.Version, error) {
	if v == "" || v == "dev" {
		return semver.Version{}, errDevBuild
	}
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return parsed, nil
}
