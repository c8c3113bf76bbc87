package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/codegen-labs/codegen/internal/generator"
	"github.com/codegen-labs/codegen/internal/templates"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// generate runs one request against the output root and reports the result.
// Panics below this point surface as ordinary errors.
func (a *app) generate(ctx context.Context, req generator.Request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Unexpected failure", zap.Any("panic", r))
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	root, err := a.outputRoot()
	if err != nil {
		return err
	}

	gen := generator.New(a.newClient(),
		generator.WithFs(afero.NewBasePathFs(afero.NewOsFs(), root)),
		generator.WithLogger(a.logger),
	)

	a.console.Info(fmt.Sprintf("Generating %s...", describe(req)))

	res, err := gen.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("error generating %s: %w", req.Kind, err)
	}

	a.report(req, res, root)
	return nil
}

func describe(req generator.Request) string {
	switch req.Kind {
	case templates.KindComponent:
		return fmt.Sprintf("component %s", req.Name)
	case templates.KindHook:
		return fmt.Sprintf("hook use%s", req.Name)
	case templates.KindCRUD:
		return fmt.Sprintf("CRUD operations for %s", req.Name)
	default:
		return req.Name
	}
}

func (a *app) report(req generator.Request, res *generator.Result, root string) {
	paths := make([]string, 0, len(res.Files))
	for _, p := range res.Paths() {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(p)))
	}

	subject := describe(req)
	subject = strings.ToUpper(subject[:1]) + subject[1:]

	if res.Origin == generator.OriginTemplate {
		if res.Fallback != nil {
			a.console.Info(fmt.Sprintf("AI generation failed: %v", res.Fallback))
		}
		a.console.Info("Using fallback templates...")
		a.console.Template(fmt.Sprintf("%s created using template!", subject))
		a.console.Files("Files created:", paths)
	} else {
		a.console.Success(fmt.Sprintf("%s created successfully!", subject))
		a.console.Files("Generated files:", paths)
	}

	switch req.Kind {
	case templates.KindComponent:
		a.console.Info(fmt.Sprintf("Type: %s", req.Variant))
	case templates.KindHook:
		a.console.Info(fmt.Sprintf("Hook type: %s", req.Variant))
	case templates.KindCRUD:
		if len(req.Operations) == 0 || len(req.Operations) == len(generator.AllOperations) {
			a.console.Info("Operations included: all")
			break
		}
		names := make([]string, len(req.Operations))
		for i, op := range req.Operations {
			names[i] = string(op)
		}
		a.console.Info(fmt.Sprintf("Operations included: %s", strings.Join(names, ", ")))
	}
}

// warnUnknownVariant tells the user which variant was used instead of s.
func (a *app) warnUnknownVariant(kind templates.Kind, s string, used templates.Variant) {
	a.console.Warn(fmt.Sprintf("Unknown %s type %q, using %q", kind, s, used))
}
