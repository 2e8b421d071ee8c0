// Package yaml provides the YAML implementation of the codec package's
// Codec interface, backed by github.com/goccy/go-yaml.
//
// YAML support is opt-in: only programs that import this package link
// the YAML module. The adapter rejects empty input explicitly because
// goccy/go-yaml treats an empty document as a successful no-op decode,
// which would mask a freshly created zero-byte config file.
package yaml
