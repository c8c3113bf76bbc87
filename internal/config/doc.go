// Package config manages user-level settings stored at ~/.codegen/config.yaml.
// Values can be overridden with CODEGEN_* environment variables; command-line
// flags bound in the cli package take precedence over both.
package config
