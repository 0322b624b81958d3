// Package schema validates serialized statement JSON against an embedded
// JSON Schema. It checks the emitted document shape only; the statement
// package's constructors enforce the deeper semantic rules.
package schema

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/seanpm2001/xapi/errors"
)

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

// compiledSchema compiles StatementSchema on first use and caches the
// result. Compilation cannot fail at runtime unless the embedded schema
// itself is broken.
func compiledSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(StatementSchema)
		compiled, compileErr = gojsonschema.NewSchema(loader)
	})
	return compiled, compileErr
}

// ValidateStatement validates one serialized statement document against
// the embedded schema. A schema violation produces an error listing every
// failing field with its description. This function is thread-safe and can
// be called concurrently.
func ValidateStatement(data []byte) error {
	if data == nil {
		return errors.NilArgument("ValidateStatement", "data")
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile statement schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		// Build error message from validation errors
		errMsg := "statement validation failed:\n"
		for _, desc := range result.Errors() {
			errMsg += fmt.Sprintf("  - %s: %s\n", desc.Field(), desc.Description())
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}
