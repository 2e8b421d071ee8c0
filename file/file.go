package file

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"

	"github.com/0xalexb/hjarta-conf/codec"
)

// ErrDecode marks a load failure caused by file content that does not
// decode into the target structure. I/O failures (missing or unreadable
// file) do not carry this mark, so callers can tell the two apart with
// errors.Is.
var ErrDecode = errors.New("cannot decode config file")

// ErrEncode marks a write failure caused by the structure not being
// representable in the chosen format.
var ErrEncode = errors.New("cannot encode config")

const fileMode = 0o600

// Load reads the whole file at path and decodes it into a fresh T using c.
//
// The read is total and non-streaming: all bytes are in memory before
// decoding begins. A missing or unreadable file surfaces the underlying
// I/O error; content that does not decode (including an empty file)
// fails with an error wrapping ErrDecode and the codec's diagnostic.
func Load[T any](path string, c codec.Codec) (*T, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the caller's own resolution
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	target := new(T)

	err = c.Decode(data, target)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecode, path, err)
	}

	return target, nil
}

// Write encodes source using c and replaces the file at path with the
// result.
//
// The write goes through a temp file in the same directory followed by an
// atomic rename (renameio), so a crash mid-write leaves either the old
// content or the new content, never a torn file. Encoding failures wrap
// ErrEncode; open/write failures surface the I/O error.
func Write(path string, source any, c codec.Codec) error {
	data, err := c.Encode(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	err = renameio.WriteFile(path, data, fileMode)
	if err != nil {
		return fmt.Errorf("writing config file %q: %w", path, err)
	}

	return nil
}
