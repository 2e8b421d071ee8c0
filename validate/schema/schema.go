package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// resource is the synthetic URL the schema document is compiled under.
const resource = "config.schema.json"

// Validator checks configuration values against a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles schemaJSON (a JSON Schema document) into a Validator.
func New(schemaJSON []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	err := compiler.AddResource(resource, bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// MustNew is like New but panics when the schema does not compile.
// Intended for package-level schema literals.
func MustNew(schemaJSON []byte) *Validator {
	validator, err := New(schemaJSON)
	if err != nil {
		panic(err)
	}

	return validator
}

// Check validates value against the schema.
//
// The value is round-tripped through encoding/json first, so the schema
// sees exactly the document a JSON config file would contain, including
// the effect of json struct tags and omitted fields.
func (v *Validator) Check(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	var doc any

	err = json.Unmarshal(data, &doc)
	if err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}

	err = v.schema.Validate(doc)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	return nil
}
