// Package commands implements the hotelsearch CLI, a thin driver around the
// hotel search client.
package commands

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/smartstay/internal/config"
	"github.com/pkordes/smartstay/internal/hotelsearch"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	endpoint string
	timeout  time.Duration
	verbose  bool

	client *hotelsearch.Client
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree writing results to out and
// diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "hotelsearch",
		Short:         "Search SmartStay hotels from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(""); err != nil {
				return err
			}
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if opts.endpoint == "" {
				opts.endpoint = cfg.HotelSearchURL
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				level = slog.LevelInfo
			}
			if opts.verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

			opts.client = hotelsearch.New(opts.endpoint)
			opts.client.HTTPClient = &http.Client{Timeout: opts.timeout}
			opts.client.Logger = hotelsearch.NewSlogLogger(log)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "API base URL (default $HOTEL_SEARCH_URL or http://localhost:8080)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(searchCmd(opts), availabilityCmd(opts))
	return root
}
