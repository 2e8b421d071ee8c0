package conf_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	conf "github.com/0xalexb/hjarta-conf"
	jsoncodec "github.com/0xalexb/hjarta-conf/codec/json"
	tomlcodec "github.com/0xalexb/hjarta-conf/codec/toml"
	"github.com/0xalexb/hjarta-conf/file"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appSettings struct {
	FirstRun bool   `json:"first_run" toml:"first_run"`
	Theme    string `json:"theme"     toml:"theme"`
}

type appSettingsWithHooks struct {
	FirstRun bool   `json:"first_run"`
	Theme    string `json:"theme"`
}

func (c *appSettingsWithHooks) SetDefaults() (changed bool) {
	if c.Theme == "" {
		c.Theme = "dark"
		changed = true
	}

	return changed
}

func (c *appSettingsWithHooks) Validate() error {
	if c.Theme != "dark" && c.Theme != "light" {
		return errors.New("theme must be dark or light")
	}

	return nil
}

// setTestEnv points the XDG machinery and the home directory at fresh
// temp dirs so tests never touch the real user environment.
// Tests using it cannot run in parallel because of t.Setenv.
func setTestEnv(t *testing.T) (configHome, home string) {
	t.Helper()

	configHome = t.TempDir()
	home = t.TempDir()

	// Registered before t.Setenv so it runs after the env is restored.
	t.Cleanup(xdg.Reload)

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(configHome, "unused-system-dirs"))
	xdg.Reload()

	return configHome, home
}

func writeConfigFile(t *testing.T, configHome, appName, fileName, content string) string {
	t.Helper()

	dir := filepath.Join(configHome, appName)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestInit_FirstRun_WritesDefaults(t *testing.T) {
	configHome, _ := setTestEnv(t)

	defaults := appSettings{FirstRun: true, Theme: "dark"}

	path, err := conf.Init(&defaults, "my_cli_tool", "config.json", jsoncodec.New())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configHome, "my_cli_tool", "config.json"), path)

	loaded, err := file.Load[appSettings](path, jsoncodec.New())
	require.NoError(t, err)
	assert.Equal(t, defaults, *loaded)
}

func TestInit_ExistingFile_LeftUntouched(t *testing.T) {
	configHome, _ := setTestEnv(t)

	content := `{"first_run": false, "theme": "light"}`
	expected := writeConfigFile(t, configHome, "my_cli_tool", "config.json", content)

	defaults := appSettings{FirstRun: true, Theme: "dark"}

	path, err := conf.Init(&defaults, "my_cli_tool", "config.json", jsoncodec.New())

	require.NoError(t, err)
	assert.Equal(t, expected, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, content, string(data), "existing config must not be overwritten with defaults")
}

func TestInit_FindsLegacyDotfile(t *testing.T) {
	_, home := setTestEnv(t)

	expected := filepath.Join(home, ".my_cli_tool.json")
	require.NoError(t, os.WriteFile(expected, []byte(`{"first_run": false}`), 0o600))

	var defaults appSettings

	path, err := conf.Init(&defaults, "my_cli_tool", "config.json", jsoncodec.New())

	require.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestProvider_FirstRun(t *testing.T) {
	setTestEnv(t)

	target := appSettings{FirstRun: true, Theme: "dark"}
	provider := conf.Provider(&target, "my_cli_tool", "config.json")

	result, err := provider()

	require.NoError(t, err)
	assert.Same(t, &target, result)
	assert.True(t, result.FirstRun)
	assert.Equal(t, "dark", result.Theme)
}

func TestProvider_LoadsExistingValues(t *testing.T) {
	configHome, _ := setTestEnv(t)

	writeConfigFile(t, configHome, "my_cli_tool", "config.json", `{"first_run": false, "theme": "light"}`)

	target := appSettings{FirstRun: true, Theme: "dark"}
	provider := conf.Provider(&target, "my_cli_tool", "config.json")

	result, err := provider()

	require.NoError(t, err)
	assert.False(t, result.FirstRun)
	assert.Equal(t, "light", result.Theme)
}

func TestProvider_TOML(t *testing.T) {
	configHome, _ := setTestEnv(t)

	writeConfigFile(t, configHome, "my_cli_tool", "config.toml", "first_run = false\ntheme = \"light\"\n")

	var target appSettings

	provider := conf.Provider(&target, "my_cli_tool", "config.toml", conf.WithCodec(tomlcodec.New()))

	result, err := provider()

	require.NoError(t, err)
	assert.False(t, result.FirstRun)
	assert.Equal(t, "light", result.Theme)
}

func TestProvider_AppliesDefaults(t *testing.T) {
	configHome, _ := setTestEnv(t)

	// Theme missing: the Defaulter hook has to fill it in after load.
	path := writeConfigFile(t, configHome, "my_cli_tool", "config.json", `{"first_run": false}`)

	var target appSettingsWithHooks

	provider := conf.Provider(&target, "my_cli_tool", "config.json")

	result, err := provider()

	require.NoError(t, err)
	assert.Equal(t, "dark", result.Theme)

	// Without WithWriteBack the file stays as found.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dark")
}

func TestProvider_WriteBack(t *testing.T) {
	configHome, _ := setTestEnv(t)

	path := writeConfigFile(t, configHome, "my_cli_tool", "config.json", `{"first_run": false}`)

	var target appSettingsWithHooks

	provider := conf.Provider(&target, "my_cli_tool", "config.json", conf.WithWriteBack())

	_, err := provider()
	require.NoError(t, err)

	loaded, err := file.Load[appSettingsWithHooks](path, jsoncodec.New())
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme, "filled-in defaults should be persisted")
}

func TestProvider_ValidationFailure(t *testing.T) {
	configHome, _ := setTestEnv(t)

	writeConfigFile(t, configHome, "my_cli_tool", "config.json", `{"first_run": false, "theme": "mauve"}`)

	var target appSettingsWithHooks

	provider := conf.Provider(&target, "my_cli_tool", "config.json")

	result, err := provider()

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "validating error")
}

func TestProvider_DecodeFailure(t *testing.T) {
	configHome, _ := setTestEnv(t)

	writeConfigFile(t, configHome, "my_cli_tool", "config.json", "not json at all")

	var target appSettings

	provider := conf.Provider(&target, "my_cli_tool", "config.json")

	result, err := provider()

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, file.ErrDecode)
}

// TestFirstRunPattern walks the documented caller-level flow: an empty
// pre-existing file fails to decode, the caller falls back to defaults and
// persists them, and the next load round-trips the persisted values.
func TestFirstRunPattern(t *testing.T) {
	configHome, _ := setTestEnv(t)

	path := writeConfigFile(t, configHome, "my_cli_tool", "config.json", "")
	c := jsoncodec.New()

	_, err := file.Load[appSettings](path, c)
	require.ErrorIs(t, err, file.ErrDecode)

	defaults := appSettings{FirstRun: true, Theme: "dark"}
	require.NoError(t, file.Write(path, &defaults, c))

	loaded, err := file.Load[appSettings](path, c)
	require.NoError(t, err)
	assert.Equal(t, defaults, *loaded)
}
