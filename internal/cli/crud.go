package cli

import (
	"fmt"
	"strings"

	"github.com/codegen-labs/codegen/internal/generator"
	"github.com/codegen-labs/codegen/internal/interaction"
	"github.com/codegen-labs/codegen/internal/templates"
	"github.com/spf13/cobra"
)

func newCRUDCmd(a *app) *cobra.Command {
	var model string
	var operations []string

	cmd := &cobra.Command{
		Use:   "crud [operations...]",
		Short: "Generate a CRUD service and hook for a model",
		Long: `Generate a typed API service and a matching React hook under
src/features/<model>/, with the directory and service file named in lower case.

Operations may be given with --operations or as trailing arguments. If --model
is omitted, the model name and operations are asked interactively.`,
		Example: `  codegen crud --model User
  codegen crud -m Product -o Create,Read
  codegen crud -m Order -o Create Read Update`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(append([]string{}, operations...), args...)

			if strings.TrimSpace(model) == "" {
				m, selected, err := interaction.AskCRUD(a.getPrompter(), generator.OperationNames())
				if err != nil {
					return fmt.Errorf("reading model details: %w", err)
				}
				model, names = m, selected
			}

			ops, unknown := generator.ParseOperations(names)
			if len(unknown) > 0 {
				a.console.Warn(fmt.Sprintf("Ignoring unknown operations: %s (known: %s)",
					strings.Join(unknown, ", "), strings.Join(generator.OperationNames(), ", ")))
			}

			return a.generate(cmd.Context(), generator.Request{
				Kind:       templates.KindCRUD,
				Name:       strings.TrimSpace(model),
				Variant:    templates.CRUDService,
				Operations: ops,
			})
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model/entity name")
	cmd.Flags().StringSliceVarP(&operations, "operations", "o", nil,
		fmt.Sprintf("CRUD operations to include (%s)", strings.Join(generator.OperationNames(), ",")))
	return cmd
}
