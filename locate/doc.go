// Package locate resolves the on-disk location of an application's config
// file under the platform's per-user configuration root.
//
// Platform conventions come from github.com/adrg/xdg, which honors the
// XDG base directory environment variables and falls back to the native
// location on macOS and Windows.
//
// Two entry points with different creation semantics:
//   - Resolve creates the <root>/<app> directory and an empty file when
//     absent, so a path it returns always names an existing file.
//   - Find only searches, trying the primary location first and then a
//     set of legacy fallbacks (~/.config/<app>/<file>, ~/.<app>.json).
//
// Resolution failures are distinguishable: errors.Is(err, ErrNoConfigRoot)
// means the platform has no known config root, anything else wraps the
// underlying create failure.
//
// Usage:
//
//	path, err := locate.Resolve("my_cli_tool", "config.json")
//	if err != nil {
//	    return err
//	}
package locate
