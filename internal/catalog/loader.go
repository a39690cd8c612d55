package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog is an in-memory view of the merged licenses directory.
type Catalog struct {
	licenses []License // sorted by SPDX ID, ordinal
	byLower  map[string]*License
}

// Load reads every *.json document under dir into a Catalog.
// A document that fails to parse or violates the record shape aborts the
// load with a MalformedRecordError.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading licenses directory: %w", err)
	}

	c := &Catalog{byLower: make(map[string]*License)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		lic, err := loadRecord(path)
		if err != nil {
			return nil, err
		}
		c.licenses = append(c.licenses, *lic)
	}

	sort.Slice(c.licenses, func(i, j int) bool {
		return c.licenses[i].SPDX.ID < c.licenses[j].SPDX.ID
	})
	for i := range c.licenses {
		c.byLower[strings.ToLower(c.licenses[i].SPDX.ID)] = &c.licenses[i]
	}
	return c, nil
}

func loadRecord(path string) (*License, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MalformedRecordError{Path: path, Reason: "unreadable", Err: err}
	}
	var lic License
	if err := json.Unmarshal(data, &lic); err != nil {
		return nil, &MalformedRecordError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if lic.SPDX.ID == "" {
		return nil, &MalformedRecordError{Path: path, Reason: "missing spdx.id"}
	}
	if !lic.Categorized {
		if len(lic.Permissions)+len(lic.Conditions)+len(lic.Limitations) > 0 {
			return nil, &MalformedRecordError{Path: path, Reason: "uncategorized license has rule references"}
		}
	}
	return &lic, nil
}
