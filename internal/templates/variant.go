package templates

import "fmt"

// Kind is the category of scaffold being generated.
type Kind string

const (
	KindComponent Kind = "component"
	KindHook      Kind = "hook"
	KindCRUD      Kind = "crud"
)

// Kinds lists every artifact kind.
var Kinds = []Kind{KindComponent, KindHook, KindCRUD}

// Variant is the sub-style of a kind. The valid set depends on the kind.
type Variant string

// Component variants.
const (
	Functional Variant = "functional"
	Class      Variant = "class"
)

// Hook variants.
const (
	HookState        Variant = "state"
	HookEffect       Variant = "effect"
	HookRef          Variant = "ref"
	HookCustom       Variant = "custom"
	HookDataFetching Variant = "data-fetching"
	HookForm         Variant = "form"
	HookLifecycle    Variant = "lifecycle"
)

// CRUD artifacts. A crud request renders both.
const (
	CRUDService Variant = "service"
	CRUDHook    Variant = "hook"
)

var (
	componentVariants = []Variant{Functional, Class}
	hookVariants      = []Variant{HookState, HookEffect, HookRef, HookCustom, HookDataFetching, HookForm, HookLifecycle}
	crudVariants      = []Variant{CRUDService, CRUDHook}
)

// Variants returns the enumerated variants of kind in menu order. Use
// DefaultVariant for the preselected entry.
func Variants(kind Kind) []Variant {
	switch kind {
	case KindComponent:
		return append([]Variant(nil), componentVariants...)
	case KindHook:
		return append([]Variant(nil), hookVariants...)
	case KindCRUD:
		return append([]Variant(nil), crudVariants...)
	default:
		return nil
	}
}

// DefaultVariant returns the variant used when none (or an unknown one) is given.
func DefaultVariant(kind Kind) Variant {
	switch kind {
	case KindComponent:
		return Functional
	case KindHook:
		return HookCustom
	case KindCRUD:
		return CRUDService
	default:
		return ""
	}
}

// ParseVariant maps s onto the closed variant set of kind. An empty or
// unrecognized s yields the kind's default; ok is false only for a non-empty
// unrecognized value so callers can warn about the substitution.
func ParseVariant(kind Kind, s string) (v Variant, ok bool) {
	if s == "" {
		return DefaultVariant(kind), true
	}
	if resolved, known := resolve(kind, Variant(s)); known {
		return resolved, true
	}
	return DefaultVariant(kind), false
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindComponent, KindHook, KindCRUD:
		return k, nil
	default:
		return "", fmt.Errorf("unknown artifact kind %q", s)
	}
}

// resolve is the exhaustive variant check for each kind. known is false when
// v is outside the kind's set, in which case the default is returned.
func resolve(kind Kind, v Variant) (resolved Variant, known bool) {
	switch kind {
	case KindComponent:
		switch v {
		case Functional, Class:
			return v, true
		}
	case KindHook:
		switch v {
		case HookState, HookEffect, HookRef, HookCustom, HookDataFetching, HookForm, HookLifecycle:
			return v, true
		}
	case KindCRUD:
		switch v {
		case CRUDService, CRUDHook:
			return v, true
		}
	}
	return DefaultVariant(kind), false
}
