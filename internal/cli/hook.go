package cli

import (
	"fmt"
	"strings"

	"github.com/codegen-labs/codegen/internal/generator"
	"github.com/codegen-labs/codegen/internal/interaction"
	"github.com/codegen-labs/codegen/internal/templates"
	"github.com/spf13/cobra"
)

func hookTypes() string {
	vs := templates.Variants(templates.KindHook)
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return strings.Join(out, "|")
}

func newHookCmd(a *app) *cobra.Command {
	var name, typ string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Generate a custom React hook",
		Long: `Generate a custom React hook at src/hooks/use<Name>.ts.

The name is given without the "use" prefix. If --name is omitted, the name and
hook type are asked interactively.`,
		Example: `  codegen hook --name Toggle --type state
  codegen hook -n Users -t data-fetching`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, known := templates.ParseVariant(templates.KindHook, typ)

			if strings.TrimSpace(name) == "" {
				n, v, err := interaction.AskHook(a.getPrompter())
				if err != nil {
					return fmt.Errorf("reading hook details: %w", err)
				}
				name, variant, known = n, v, true
			}
			if !known {
				a.warnUnknownVariant(templates.KindHook, typ, variant)
			}

			return a.generate(cmd.Context(), generator.Request{
				Kind:    templates.KindHook,
				Name:    strings.TrimSpace(name),
				Variant: variant,
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "hook name without the use prefix")
	cmd.Flags().StringVarP(&typ, "type", "t", "", fmt.Sprintf("hook type (%s)", hookTypes()))
	return cmd
}
