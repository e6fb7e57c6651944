package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulibrary/ostiposter/pkg/constants"
)

// isolate runs the test in an empty working and home directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

// unsetAfter removes env vars a .env file may have set during the test.
func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() {
		for _, key := range keys {
			_ = os.Unsetenv(key)
		}
	})
}

// TestLoadConfigDefaults verifies the defaults with no config sources.
func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OSTI_ENDPOINT", "")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultDataDir, config.DataDir)
	assert.Equal(t, constants.DefaultRecordsFile, config.RecordsFile)
	assert.Equal(t, constants.DefaultFormInput, config.FormInput)
	assert.Equal(t, constants.DefaultOutputFile, config.OutputFile)
	assert.Equal(t, constants.DefaultHTTPTimeout, config.OSTITimeout)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
	assert.Empty(t, config.LogLevel)
	assert.Empty(t, config.OSTIEndpoint)
	assert.Empty(t, config.ConfigFile)
}

// TestLoadConfigFile verifies the config file in the working directory is found.
func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	content := "data_dir: exports\nosti_endpoint: https://registry.test/api\nosti_timeout: 5s\nformat: yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ostiposter.yaml"), []byte(content), 0o600))

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "exports", config.DataDir)
	assert.Equal(t, "https://registry.test/api", config.OSTIEndpoint)
	assert.Equal(t, 5*time.Second, config.OSTITimeout)
	assert.Equal(t, "yaml", config.Format)
	assert.Contains(t, config.ConfigFile, ".ostiposter.yaml")
}

// TestLoadConfigExplicitFile verifies --config style loading.
func TestLoadConfigExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form_input: sheets/form.csv\n"), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sheets/form.csv", config.FormInput)

	_, err = LoadConfig(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err, "an explicit config file must exist")
}

// TestLoadConfigEnvironment verifies prefixed and conventional variables.
func TestLoadConfigEnvironment(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ostiposter.yaml"), []byte("data_dir: fromfile\n"), 0o600))

	t.Setenv("OSTIPOSTER_DATA_DIR", "fromenv")
	t.Setenv("OSTI_USERNAME", "curator")
	t.Setenv("OSTIPOSTER_OSTI_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OSTIPOSTER_VERBOSE", "true")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "fromenv", config.DataDir, "environment wins over the config file")
	assert.Equal(t, "curator", config.OSTIUsername)
	assert.Equal(t, "secret", config.OSTIPassword)
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.Verbose)
}

// TestLoadConfigDotEnv verifies .env.local wins over .env and the real
// environment wins over both.
func TestLoadConfigDotEnv(t *testing.T) {
	dir := isolate(t)
	unsetAfter(t, "OSTI_TOKEN", "OSTI_ENDPOINT")
	t.Setenv("OSTI_USERNAME", "from-env")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("OSTI_TOKEN=from-dotenv\nOSTI_ENDPOINT=https://dotenv.test\nOSTI_USERNAME=from-dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("OSTI_TOKEN=from-local\n"), 0o600))

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "from-local", config.OSTIToken)
	assert.Equal(t, "https://dotenv.test", config.OSTIEndpoint)
	assert.Equal(t, "from-env", config.OSTIUsername)
}
