// Package schema validates configuration values against a JSON Schema,
// backed by github.com/santhosh-tekuri/jsonschema.
//
// The usual wiring is a config type satisfying the root package's
// Validator interface by delegating to a compiled schema:
//
//	var configSchema = schema.MustNew([]byte(`{
//	    "type": "object",
//	    "properties": {
//	        "port": {"type": "integer", "minimum": 1, "maximum": 65535}
//	    }
//	}`))
//
//	func (c *MyConfig) Validate() error {
//	    return configSchema.Check(c)
//	}
//
// Importing this package is the opt-in; programs that validate by hand
// never link the jsonschema module.
package schema
