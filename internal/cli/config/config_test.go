package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultSPDXDir, cfg.SPDXDir)
	assert.Equal(t, DefaultChooseALicenseDir, cfg.ChooseALicenseDir)
	assert.Equal(t, DefaultLicensesDir, cfg.LicensesDir)
	assert.Equal(t, DefaultRulesPath, cfg.RulesPath)
	assert.Equal(t, DefaultTagsPath, cfg.TagsPath)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	ResetConfig()

	path := filepath.Join(t.TempDir(), "licensedb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("licenses_dir: /srv/licenses\nverbose: true\n"), 0644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/srv/licenses", cfg.LicensesDir)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultSPDXDir, cfg.SPDXDir, "unset keys keep defaults")
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()

	path := filepath.Join(t.TempDir(), "licensedb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("licenses_dir: /from/file\n"), 0644))
	t.Setenv("LICENSEDB_LICENSES_DIR", "/from/env")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.LicensesDir)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Setenv("LICENSEDB_LICENSES_DIR", "/from/env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("licenses-dir", "", "")
	flags.String("rules", "", "")
	require.NoError(t, flags.Parse([]string{"--licenses-dir", "/from/flag", "--rules", "/custom/rules.json"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.LicensesDir)
	assert.Equal(t, "/custom/rules.json", cfg.RulesPath, "--rules maps to rules_path")
}

func TestLoadConfigUnsetFlagsIgnored(t *testing.T) {
	ResetConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("licenses-dir", "should-not-apply", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultLicensesDir, cfg.LicensesDir)
}
