package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codegen-labs/codegen/internal/templates"
)

// ErrEmptyName is returned when a Request reaches the generator without a name.
var ErrEmptyName = errors.New("name must not be empty")

// Operation is a CRUD operation. The selection is reported but does not
// change the generated files.
type Operation string

const (
	OpCreate Operation = "Create"
	OpRead   Operation = "Read"
	OpUpdate Operation = "Update"
	OpDelete Operation = "Delete"
	OpList   Operation = "List"
)

// AllOperations lists every CRUD operation in menu order.
var AllOperations = []Operation{OpCreate, OpRead, OpUpdate, OpDelete, OpList}

// OperationNames returns AllOperations as strings.
func OperationNames() []string {
	out := make([]string, len(AllOperations))
	for i, op := range AllOperations {
		out[i] = string(op)
	}
	return out
}

// ParseOperations matches names case-insensitively against AllOperations.
// Unrecognized names are returned separately so callers can warn about them.
func ParseOperations(names []string) (ops []Operation, unknown []string) {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		matched := false
		for _, op := range AllOperations {
			if strings.EqualFold(n, string(op)) {
				ops = append(ops, op)
				matched = true
				break
			}
		}
		if !matched {
			unknown = append(unknown, n)
		}
	}
	return ops, unknown
}

// Request describes one generation. It is built once per command.
type Request struct {
	Kind       templates.Kind
	Name       string
	Variant    templates.Variant
	Operations []Operation // crud only
}

// Validate rejects requests that must never reach the filesystem.
func (r Request) Validate() error {
	if _, err := templates.ParseKind(string(r.Kind)); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%s: %w", r.Kind, ErrEmptyName)
	}
	return nil
}

// Origin says where file contents came from.
type Origin string

const (
	OriginRemote   Origin = "remote"
	OriginTemplate Origin = "template"
)

// OutputFile is one file written by a run. Path is relative to the output root.
type OutputFile struct {
	Path     string
	Contents string
}

// Result summarizes a completed run.
type Result struct {
	Files  []OutputFile
	Origin Origin
	// Fallback holds the generation failure that caused template rendering.
	Fallback error
}

// Paths returns the relative paths of every written file.
func (r *Result) Paths() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Path
	}
	return out
}
