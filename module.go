package conf

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// Module creates an Fx module that provides *T loaded from the
// application's config file.
// The name is used as both the Fx module name and the DI named tag for *T,
// so several config files can coexist in one container. Loading happens
// lazily, when the container first asks for the value.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module[T any](name, appName, fileName string, target *T, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				Provider(target, appName, fileName, opts...),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
