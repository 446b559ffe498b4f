package zonefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "zonescan.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigDefaultsClassToIN(t *testing.T) {
	path := writeTempConfig(t, `origin = "example.com."`+"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "IN", cfg.DefaultClass)
	assert.Equal(t, "example.com.", cfg.Origin)
}

func TestLoadConfigReadsAllFields(t *testing.T) {
	path := writeTempConfig(t, ""+
		"origin = \"example.com.\"\n"+
		"default_ttl = 3600\n"+
		"default_class = \"CH\"\n"+
		"no_includes = true\n"+
		"include_limit = 5\n"+
		"pretty_ttls = true\n"+
		"secondary = true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.EqualValues(t, 3600, cfg.DefaultTTL)
	assert.Equal(t, "CH", cfg.DefaultClass)
	assert.True(t, cfg.NoIncludes)
	assert.EqualValues(t, 5, cfg.IncludeLimit)
	assert.True(t, cfg.PrettyTTLs)
	assert.True(t, cfg.Secondary)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
