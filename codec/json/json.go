package json

import (
	"encoding/json"
	"fmt"

	"github.com/0xalexb/hjarta-conf/codec"
)

// Codec implements codec.Codec for JSON data using encoding/json.
// Output is indented for hand-editing.
type Codec struct{}

// New creates a new JSON codec instance.
func New() *Codec {
	return &Codec{}
}

// Encode serializes source as indented JSON with a trailing newline.
func (c *Codec) Encode(source any) ([]byte, error) {
	data, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return append(data, '\n'), nil
}

// Decode deserializes JSON data into target.
// Empty input fails with codec.ErrEmptyData.
func (c *Codec) Decode(data []byte, target any) error {
	if len(data) == 0 {
		return codec.ErrEmptyData
	}

	err := json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
