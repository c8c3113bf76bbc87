package ai

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/response.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded response schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("response.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("response.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateResponse checks an already-decoded JSON body against the response
// schema and returns a readable description of every violation.
func validateResponse(inst any) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}

	var msgs []string
	collectMessages(ve, &msgs)
	if len(msgs) == 0 {
		return ve
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// collectMessages walks the error tree and records leaf messages.
func collectMessages(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		if ve.ErrorKind == nil {
			return
		}
		msg := ve.ErrorKind.LocalizedString(printer)
		if len(ve.InstanceLocation) > 0 {
			msg = "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
		}
		*msgs = append(*msgs, msg)
		return
	}
	for _, cause := range ve.Causes {
		collectMessages(cause, msgs)
	}
}
