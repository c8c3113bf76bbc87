// Package templates is the Template Bank: a fixed set of name-parameterized
// React/TypeScript skeletons used when remote generation is unavailable.
//
// Templates are embedded .tmpl files parsed once at package initialization
// with text/template and the sprig function map. Rendering is pure: the same
// (kind, variant, name) always yields byte-identical output.
package templates
