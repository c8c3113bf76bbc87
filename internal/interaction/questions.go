package interaction

import (
	"github.com/codegen-labs/codegen/internal/templates"
)

func variantStrings(kind templates.Kind) []string {
	vs := templates.Variants(kind)
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// askNamed asks for a required name followed by one of kind's variants.
func askNamed(p Prompter, kind templates.Kind, nameTitle, variantTitle string) (string, templates.Variant, error) {
	name, err := p.Input(nameTitle)
	if err != nil {
		return "", "", err
	}
	choice, err := p.Select(variantTitle, variantStrings(kind), string(templates.DefaultVariant(kind)))
	if err != nil {
		return "", "", err
	}
	v, _ := templates.ParseVariant(kind, choice)
	return name, v, nil
}

// AskComponent collects a component name and style.
func AskComponent(p Prompter) (string, templates.Variant, error) {
	return askNamed(p, templates.KindComponent, "What is the component name?", "What type of component?")
}

// AskHook collects a hook name (without the "use" prefix) and hook type.
func AskHook(p Prompter) (string, templates.Variant, error) {
	return askNamed(p, templates.KindHook, "What is the hook name?", "What type of hook is this?")
}

// AskCRUD collects a model name and the operations to generate. All
// operations are preselected.
func AskCRUD(p Prompter, operations []string) (string, []string, error) {
	model, err := p.Input("What is the model/entity name?")
	if err != nil {
		return "", nil, err
	}
	selected, err := p.MultiSelect("Select CRUD operations to generate:", operations, operations)
	if err != nil {
		return "", nil, err
	}
	return model, selected, nil
}
