package merge

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Metadata is the choosealicense frontmatter subset the merger consumes.
// Rule entries are free-text labels that must be translated through the
// rule registry before they appear in a merged document.
type Metadata struct {
	SPDXID      string   `yaml:"spdx-id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Permissions []string `yaml:"permissions"`
	Conditions  []string `yaml:"conditions"`
	Limitations []string `yaml:"limitations"`
}

// frontmatterPattern matches a leading --- ... --- YAML block.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---`)

var titleCaser = cases.Title(language.English)

// parseFrontmatter extracts the YAML frontmatter of a choosealicense
// license file. Files without frontmatter yield ok=false and are skipped
// by the loader, matching the upstream layout where non-license files sit
// alongside license texts.
func parseFrontmatter(content []byte) (*Metadata, bool, error) {
	matches := frontmatterPattern.FindSubmatch(content)
	if len(matches) < 2 {
		return nil, false, nil
	}
	var meta Metadata
	if err := yaml.Unmarshal(matches[1], &meta); err != nil {
		return nil, false, err
	}
	return &meta, true, nil
}

// LoadChooseALicense reads choosealicense license files under dir and
// indexes their metadata by lowercased SPDX ID. Files whose frontmatter
// carries no spdx-id are skipped.
func LoadChooseALicense(dir string) (map[string]Metadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &SourceUnavailableError{Source: "choosealicense", Path: dir, Err: err}
	}

	licenses := make(map[string]Metadata)
	for _, entry := range entries {
		if entry.IsDir() || !hasLicenseExt(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &SourceUnavailableError{Source: "choosealicense", Path: path, Err: err}
		}
		meta, ok, err := parseFrontmatter(content)
		if err != nil {
			return nil, &SourceUnavailableError{Source: "choosealicense", Path: path, Err: err}
		}
		if !ok || meta.SPDXID == "" {
			continue
		}
		if meta.Title == "" {
			meta.Title = titleFromFilename(entry.Name())
		}
		licenses[strings.ToLower(meta.SPDXID)] = *meta
	}
	return licenses, nil
}

func hasLicenseExt(name string) bool {
	return strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".md")
}

func titleFromFilename(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return titleCaser.String(strings.ReplaceAll(stem, "-", " "))
}
