package conf

import (
	"github.com/0xalexb/hjarta-conf/codec"
	"github.com/0xalexb/hjarta-conf/codec/json"
)

// Options holds settings for a configuration provider.
type Options struct {
	Codec     codec.Codec
	WriteBack bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithCodec selects the serialization format for the config file.
// When not set, the JSON codec is used.
func WithCodec(c codec.Codec) Option {
	return func(opts *Options) {
		opts.Codec = c
	}
}

// WithWriteBack persists the configuration file after SetDefaults reports
// a change, so filled-in defaults become visible on disk for hand-editing.
func WithWriteBack() Option {
	return func(opts *Options) {
		opts.WriteBack = true
	}
}

func (opts *Options) setDefaults() {
	if opts.Codec == nil {
		opts.Codec = json.New()
	}
}
