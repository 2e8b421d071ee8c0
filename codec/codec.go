package codec

import "errors"

// ErrEmptyData is returned by a Codec when asked to decode empty input.
// A zero-byte config file is never a valid encoding of a structure, so
// decoding it fails instead of silently yielding a zero value.
var ErrEmptyData = errors.New("empty data")

// Codec defines the format capability for configuration structures.
//
// A Codec maps between a structure and its on-disk byte representation.
// One implementation exists per built-in format (see codec/json,
// codec/toml, codec/yaml); callers integrating an arbitrary byte format
// implement Codec directly and pass it wherever a built-in one would go.
type Codec interface {
	// Encode serializes source into the format's byte representation.
	Encode(source any) ([]byte, error)

	// Decode deserializes data into target, which must be a pointer.
	// Decoding empty input fails with ErrEmptyData.
	Decode(data []byte, target any) error
}
