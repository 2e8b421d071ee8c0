// Package toml provides the TOML implementation of the codec package's
// Codec interface, backed by github.com/BurntSushi/toml.
//
// TOML support is opt-in: only programs that import this package link
// the TOML module. TOML reads well for nested tables and is a common
// choice for hand-edited CLI configuration.
package toml
