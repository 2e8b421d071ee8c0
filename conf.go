// Package conf manages per-application configuration files for CLI tools:
// it resolves the platform config directory, populates a default file on
// first run, and loads or writes a caller-defined structure through a
// pluggable serialization codec.
package conf

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/codec"
	"github.com/0xalexb/hjarta-conf/file"
	"github.com/0xalexb/hjarta-conf/locate"
)

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Init returns the path of the config file for appName, creating and
// populating it on first run.
//
// An existing file is searched first (locate.Find, including legacy
// fallback locations) and returned untouched when present. When nothing
// exists yet, a fresh path is resolved under the platform config root and
// cfg, the caller's default value, is written to it with c.
func Init[T any](cfg *T, appName, fileName string, c codec.Codec) (string, error) {
	path, err := locate.Find(appName, fileName)
	if err == nil {
		return path, nil
	}

	path, err = locate.Resolve(appName, fileName)
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}

	err = file.Write(path, cfg, c)
	if err != nil {
		return "", fmt.Errorf("writing initial config: %w", err)
	}

	return path, nil
}

// Provider returns a constructor function that initializes, loads, and
// checks the configuration for appName.
//
// The returned function runs Init with target's current values as the
// first-run default, loads the file back into target, then applies the
// optional Defaulter and Validator hooks when target implements them.
// When SetDefaults reports a change and WithWriteBack was given, the
// filled-in values are persisted to the file.
//
// The constructor shape makes the result usable directly with fx.Provide;
// see Module for the packaged form.
func Provider[T any](target *T, appName, fileName string, opts ...Option) func() (*T, error) {
	return func() (*T, error) {
		var options Options

		for _, apply := range opts {
			apply(&options)
		}

		options.setDefaults()

		path, err := Init(target, appName, fileName, options.Codec)
		if err != nil {
			return nil, fmt.Errorf("initializing config: %w", err)
		}

		loaded, err := file.Load[T](path, options.Codec)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		*target = *loaded

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))

				if options.WriteBack {
					err = file.Write(path, target, options.Codec)
					if err != nil {
						return nil, fmt.Errorf("persisting defaults: %w", err)
					}
				}
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
