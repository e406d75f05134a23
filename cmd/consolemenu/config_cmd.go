package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/consolemenu/internal/config"
	"github.com/raphi011/consolemenu/internal/log"
	"github.com/raphi011/consolemenu/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Long: `Manage consolemenu configuration.

Config file: ~/.config/consolemenu/config.toml
Override the location with the CONSOLEMENU_CONFIG environment variable.`,
		Example: `  consolemenu config init     # Create default config
  consolemenu config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  consolemenu config init      # Create config
  consolemenu config init -f   # Overwrite existing config
  consolemenu config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				out.Printf("%s", config.DefaultContent())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			s, err := cfg.Encode()
			if err != nil {
				return err
			}
			if path, err := config.Path(); err == nil {
				log.FromContext(ctx).Printf("# %s\n", path)
			}
			output.FromContext(ctx).Printf("%s", s)
			return nil
		},
	}
}
