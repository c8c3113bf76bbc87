// Package cli defines the Cobra command tree for the codegen CLI. Each file
// builds one top-level command (component, hook, crud, etc.) and attaches it
// to the root command. Commands only parse flags, ask for missing input and
// format output; generation itself lives in the generator package.
package cli
