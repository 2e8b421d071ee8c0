package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ErrNoConfigRoot is returned when no per-user configuration root can be
// determined on the running platform.
var ErrNoConfigRoot = errors.New("no user config root on this platform")

// ErrNotFound is returned by Find when no existing config file matches
// any of the searched locations.
var ErrNotFound = errors.New("config file not found")

const (
	dirMode  = 0o755
	fileMode = 0o600
)

// Resolve returns the path of the config file for appName, creating the
// directory and the file when absent.
//
// The target is <config root>/<appName>/<fileName>, where the config root
// follows the platform convention ($XDG_CONFIG_HOME or ~/.config on Linux,
// Application Support on macOS, %LOCALAPPDATA% on Windows). Missing
// intermediate directories are created. A missing file is created empty;
// Resolve does not know the structure's default value, it only guarantees
// the caller has somewhere to read from or write an initial default into.
//
// Resolve is idempotent: a second call with the same arguments returns the
// same path without further filesystem mutation.
func Resolve(appName, fileName string) (string, error) {
	root := xdg.ConfigHome
	if root == "" {
		return "", ErrNoConfigRoot
	}

	dir := filepath.Join(root, appName)

	err := os.MkdirAll(dir, dirMode)
	if err != nil {
		return "", fmt.Errorf("creating config dir %q: %w", dir, err)
	}

	path := filepath.Join(dir, fileName)

	// O_CREATE without O_TRUNC: creates the file when absent, leaves
	// existing content alone.
	handle, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, fileMode) // #nosec G304 -- path is built from the config root
	if err != nil {
		return "", fmt.Errorf("creating config file %q: %w", path, err)
	}

	err = handle.Close()
	if err != nil {
		return "", fmt.Errorf("closing config file %q: %w", path, err)
	}

	return path, nil
}

// Find searches for an existing config file without creating anything.
//
// Locations are tried in order:
//  1. <config root>/<appName>/<fileName>, including secondary config dirs
//  2. <config root>/<appName>.json
//  3. ~/.config/<appName>/<fileName>
//  4. ~/.<appName>.json
//
// The first hit wins. When nothing exists, Find fails with an error
// wrapping ErrNotFound.
func Find(appName, fileName string) (string, error) {
	path, err := xdg.SearchConfigFile(filepath.Join(appName, fileName))
	if err == nil {
		return path, nil
	}

	path, err = xdg.SearchConfigFile(appName + ".json")
	if err == nil {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		fallback := filepath.Join(home, ".config", appName, fileName)
		if fileExists(fallback) {
			return fallback, nil
		}

		fallback = filepath.Join(home, "."+appName+".json")
		if fileExists(fallback) {
			return fallback, nil
		}
	}

	return "", fmt.Errorf("%w: %s/%s", ErrNotFound, appName, fileName)
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)

	return err == nil && !stat.IsDir()
}
