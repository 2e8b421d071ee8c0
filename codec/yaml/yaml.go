package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-conf/codec"
)

// Codec implements codec.Codec for YAML data using goccy/go-yaml.
type Codec struct{}

// New creates a new YAML codec instance.
func New() *Codec {
	return &Codec{}
}

// Encode serializes source as a YAML document.
func (c *Codec) Encode(source any) ([]byte, error) {
	data, err := yaml.Marshal(source)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Decode deserializes YAML data into target.
// Empty input fails with codec.ErrEmptyData; the YAML parser would
// otherwise accept it and leave target untouched.
func (c *Codec) Decode(data []byte, target any) error {
	if len(data) == 0 {
		return codec.ErrEmptyData
	}

	err := yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
