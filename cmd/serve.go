package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/lfm/server"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Last.fm lookups as a JSON API",
	Long: `Start a read-only HTTP server exposing search and lookup endpoints as JSON.

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	sc := cfg.Server
	if listenAddr != "" {
		sc.Addr = listenAddr
	}

	filters, err := newFilterManager(cfg.Filter)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:            sc.Addr,
		ReadTimeout:     sc.ReadTimeout,
		WriteTimeout:    sc.WriteTimeout,
		ShutdownTimeout: sc.ShutdownTimeout,
	}, client, filters, logger)

	return srv.Run(cmd.Context())
}
