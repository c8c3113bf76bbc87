package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed tmpl/*.tmpl
var templateFS embed.FS

var bank = template.Must(
	template.New("bank").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "tmpl/*.tmpl"),
)

// Data is the value every template is executed against.
type Data struct {
	Name string
}

// fileName maps a resolved (kind, variant) to its embedded template.
func fileName(kind Kind, v Variant) string {
	ext := ".ts.tmpl"
	if kind == KindComponent {
		ext = ".tsx.tmpl"
	}
	return string(kind) + "_" + string(v) + ext
}

// Render returns the source skeleton for (kind, variant) with name substituted.
// A variant outside the kind's set falls back to the kind's default.
//
// Render panics if kind is not one of Kinds; the embedded templates themselves
// are fixed and cannot fail to execute against Data.
func Render(kind Kind, variant Variant, name string) string {
	if _, err := ParseKind(string(kind)); err != nil {
		panic(err)
	}
	v, _ := resolve(kind, variant)

	tmpl := bank.Lookup(fileName(kind, v))
	if tmpl == nil {
		panic(fmt.Sprintf("templates: no template for %s/%s", kind, v))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, Data{Name: name}); err != nil {
		panic(fmt.Sprintf("templates: executing %s/%s: %v", kind, v, err))
	}
	return buf.String()
}

// Stylesheet returns the fixed CSS module body written next to a component.
func Stylesheet(name string) string {
	return fmt.Sprintf("/* \n* Styles for %s component\n*/", name)
}
