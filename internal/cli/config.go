package cli

import (
	"fmt"
	"strings"

	"github.com/codegen-labs/codegen/internal/branding"
	"github.com/codegen-labs/codegen/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var keys strings.Builder
	for _, k := range config.Keys {
		fmt.Fprintf(&keys, "  %-10s %s\n", k, branding.EnvVar(k))
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: fmt.Sprintf(`Read and write %s configuration stored at ~/%s/config.yaml.

Known keys and the environment variables that take precedence over them:

%s`, branding.DisplayName(), branding.HomeDir(), keys.String()),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsKnown(args[0]) {
				return fmt.Errorf("unknown config key %q (known: %v)", args[0], config.Keys)
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range config.Keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, config.Get(k))
			}
			return nil
		},
	})

	return cmd
}
