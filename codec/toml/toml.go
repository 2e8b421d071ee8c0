package toml

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/0xalexb/hjarta-conf/codec"
)

// Codec implements codec.Codec for TOML data using BurntSushi/toml.
type Codec struct{}

// New creates a new TOML codec instance.
func New() *Codec {
	return &Codec{}
}

// Encode serializes source as a TOML document.
func (c *Codec) Encode(source any) ([]byte, error) {
	data, err := toml.Marshal(source)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Decode deserializes TOML data into target.
// Empty input fails with codec.ErrEmptyData; the TOML parser would
// otherwise accept it as a valid empty document.
func (c *Codec) Decode(data []byte, target any) error {
	if len(data) == 0 {
		return codec.ErrEmptyData
	}

	err := toml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
