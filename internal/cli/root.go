// Package cli implements the collection command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zerofoolcoder/collectionsjs/internal/config"
	"github.com/zerofoolcoder/collectionsjs/internal/logger"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func Execute() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// run executes cmd and reports a failure on its error writer.
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "collection:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		debug      bool
	)
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "collection",
		Short:         "Filter and reshape ordered lists of numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if debug {
				cfg.Log.Level = zerolog.LevelDebugValue
			}
			level, err := logger.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(
				logger.Writer(cmd.ErrOrStderr()),
				logger.Level(level),
				logger.Pretty(cfg.Log.Pretty),
			)
			a.log.Debug().Str("config", configPath).Str("level", level.String()).Msg("configured")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml or json)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "shorthand for --log-level debug")

	cmd.AddCommand(newFilterCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}
