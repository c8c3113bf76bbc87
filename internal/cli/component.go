package cli

import (
	"fmt"
	"strings"

	"github.com/codegen-labs/codegen/internal/generator"
	"github.com/codegen-labs/codegen/internal/interaction"
	"github.com/codegen-labs/codegen/internal/templates"
	"github.com/spf13/cobra"
)

func newComponentCmd(a *app) *cobra.Command {
	var name, typ string

	cmd := &cobra.Command{
		Use:   "component",
		Short: "Generate a React component",
		Long: `Generate a React component and its stylesheet under src/components/<Name>/.

If --name is omitted, the name and component type are asked interactively.`,
		Example: `  codegen component --name Button
  codegen component -n Counter -t class`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, known := templates.ParseVariant(templates.KindComponent, typ)

			if strings.TrimSpace(name) == "" {
				n, v, err := interaction.AskComponent(a.getPrompter())
				if err != nil {
					return fmt.Errorf("reading component details: %w", err)
				}
				name, variant, known = n, v, true
			}
			if !known {
				a.warnUnknownVariant(templates.KindComponent, typ, variant)
			}

			return a.generate(cmd.Context(), generator.Request{
				Kind:    templates.KindComponent,
				Name:    strings.TrimSpace(name),
				Variant: variant,
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "component name")
	cmd.Flags().StringVarP(&typ, "type", "t", string(templates.Functional), "component type (functional|class)")
	return cmd
}
