// Package config provides configuration management for the licensedb CLI.
// Values are layered: defaults, then the config file, then LICENSEDB_
// environment variables, then explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	SPDXDir           string `koanf:"spdx_dir"`
	ChooseALicenseDir string `koanf:"choosealicense_dir"`
	LicensesDir       string `koanf:"licenses_dir"`
	RulesPath         string `koanf:"rules_path"`
	TagsPath          string `koanf:"tags_path"`
	Verbose           bool   `koanf:"verbose"`
	OutputFormat      string `koanf:"output"`
}

// Default configuration values, rooted at the repository data directory.
const (
	DefaultSPDXDir           = "data/spdx/details"
	DefaultChooseALicenseDir = "data/choosealicense/_licenses"
	DefaultLicensesDir       = "data/licenses"
	DefaultRulesPath         = "data/rules.json"
	DefaultTagsPath          = "data/tags.json"
	DefaultOutput            = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
