package generator

import (
	"path"
	"strings"

	"github.com/codegen-labs/codegen/internal/templates"
)

// artifact is one file a request resolves to. Files with an empty prompt
// have fixed contents and never go to the remote service.
type artifact struct {
	path    string
	prompt  string
	kind    templates.Kind
	variant templates.Variant
	static  string
}

func (a artifact) fallback(name string) string {
	if a.prompt == "" {
		return a.static
	}
	return templates.Render(a.kind, a.variant, name)
}

// plan lists the artifacts of r in write order. Paths use forward slashes
// and are relative to the output root.
func plan(r Request) []artifact {
	switch r.Kind {
	case templates.KindComponent:
		v, _ := templates.ParseVariant(templates.KindComponent, string(r.Variant))
		dir := path.Join("src", "components", r.Name)
		return []artifact{
			{
				path:    path.Join(dir, r.Name+".tsx"),
				prompt:  componentPrompt(r.Name, v),
				kind:    templates.KindComponent,
				variant: v,
			},
			{
				path:   path.Join(dir, r.Name+".module.css"),
				static: templates.Stylesheet(r.Name),
			},
		}
	case templates.KindHook:
		v, _ := templates.ParseVariant(templates.KindHook, string(r.Variant))
		return []artifact{{
			path:    path.Join("src", "hooks", "use"+r.Name+".ts"),
			prompt:  hookPrompt(r.Name, v),
			kind:    templates.KindHook,
			variant: v,
		}}
	case templates.KindCRUD:
		lower := strings.ToLower(r.Name)
		dir := path.Join("src", "features", lower)
		return []artifact{
			{
				path:    path.Join(dir, lower+".service.ts"),
				prompt:  crudServicePrompt(r.Name),
				kind:    templates.KindCRUD,
				variant: templates.CRUDService,
			},
			{
				path:    path.Join(dir, "use"+r.Name+".ts"),
				prompt:  crudHookPrompt(r.Name),
				kind:    templates.KindCRUD,
				variant: templates.CRUDHook,
			},
		}
	default:
		return nil
	}
}
