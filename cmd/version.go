package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	buildTime  = "unknown"
)

// SetVersion records the build information stamped in by main
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
	rootCmd.Version = version
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoClient: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lfm %s\n", appVersion)
		fmt.Printf("Built: %s\n", buildTime)
		fmt.Printf("Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
