// Package json provides the JSON implementation of the codec package's
// Codec interface.
//
// JSON is the canonical format for config files managed by this module
// and carries no third-party dependency; encoding/json does the work.
// Encoded output is indented with two spaces so files stay pleasant to
// edit by hand.
//
// Usage:
//
//	c := json.New()
//	data, err := c.Encode(&cfg)
package json
