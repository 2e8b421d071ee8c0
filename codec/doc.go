// Package codec defines the serialization contract for configuration
// structures.
//
// The package holds only the Codec interface and shared sentinel errors;
// concrete implementations live in subpackages, one per format:
//   - codec/json: JSON via encoding/json (the canonical default)
//   - codec/toml: TOML via github.com/BurntSushi/toml
//   - codec/yaml: YAML via github.com/goccy/go-yaml
//
// Format selection is a compile-time decision: a program that only imports
// codec/json never links the TOML or YAML modules. Custom formats plug in
// by implementing Codec directly, no registration step involved.
//
// # Example
//
//	var cfg MyConfig
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return err
//	}
//	err = json.New().Decode(data, &cfg)
package codec
