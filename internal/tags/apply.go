package tags

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/licensedb/licensedb/internal/catalog"
)

// Apply rewrites the tags field of every merged document under dir with
// freshly computed, registry-validated tags. With onlyMissing set, files
// that already carry a tags field are left untouched; files that cannot
// be parsed are skipped in that scan, matching a triage pass over a
// partially tagged catalog. Returns the number of files updated.
func Apply(dir string, reg *Registry, onlyMissing bool, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	updated := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		changed, err := applyToFile(path, reg, onlyMissing, log)
		if err != nil {
			return updated, err
		}
		if changed {
			updated++
		}
	}
	return updated, nil
}

func applyToFile(path string, reg *Registry, onlyMissing bool, log *slog.Logger) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	if onlyMissing {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			log.Warn("skipping unparseable document", "path", path, "err", err)
			return false, nil
		}
		if _, has := probe["tags"]; has {
			return false, nil
		}
	}

	var lic catalog.License
	if err := json.Unmarshal(data, &lic); err != nil {
		return false, &catalog.MalformedRecordError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if lic.SPDX.ID == "" {
		// Nothing to tag without SPDX metadata.
		return false, nil
	}

	valid := make([]string, 0)
	for _, tag := range Build(lic.SPDX) {
		if reg.IsValid(tag) {
			valid = append(valid, tag)
		} else {
			log.Debug("dropping tag not in registry", "license", lic.SPDX.ID, "tag", tag)
		}
	}
	lic.Tags = valid

	out, err := json.MarshalIndent(&lic, "", "  ")
	if err != nil {
		return false, err
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0644); err != nil {
		return false, err
	}
	return true, nil
}
