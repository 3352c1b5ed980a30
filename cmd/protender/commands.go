package main

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"protender-api/app"
	"protender-api/internal/config"
)

const envFileFlag = "env-file"

func envFileFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		envFileFlag: &cobraflags.StringFlag{
			Name:  envFileFlag,
			Value: "",
			Usage: "Path to a dotenv file loaded before reading the environment (defaults to ./.env when present)",
		},
	}
}

func loadConfig(flags map[string]cobraflags.Flag) (*config.Config, error) {
	cfg, err := config.Load(flags[envFileFlag].GetString())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// NewRootCommand runs the API server when invoked without a subcommand.
func NewRootCommand() *cobra.Command {
	flags := envFileFlags()

	cmd := &cobra.Command{
		Use:           "protender",
		Short:         "Tender marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}
	cobraflags.RegisterMap(cmd, flags)

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	flags := envFileFlags()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func newMigrateCommand() *cobra.Command {
	flags := envFileFlags()

	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back database migrations",
		Long: `Apply or roll back the embedded database migrations.

  protender migrate up     # apply every pending migration
  protender migrate down   # roll back the latest migration`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{app.MigrateUp, app.MigrateDown},
		RunE: func(_ *cobra.Command, args []string) error {
			if args[0] != app.MigrateUp && args[0] != app.MigrateDown {
				return fmt.Errorf("unknown migration direction %q, expected %q or %q", args[0], app.MigrateUp, app.MigrateDown)
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return app.Migrate(cfg, args[0])
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
