// Package tags applies tag heuristics to merged license documents and
// validates the results against the tag registry. Tags are "group:key"
// strings grouped by concern (license type, domain, copyleft strength,
// family, notes, SPDX status).
package tags

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// groupMetaKey is the reserved registry entry holding group metadata; it
// is never a valid tag key.
const groupMetaKey = "_group"

// Entry is a single registry entry: either a tag (Description, URL) or a
// group's metadata (Short, Description).
type Entry struct {
	Short       string `json:"short,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Registry is the tag registry: group name to tag key to entry.
type Registry struct {
	groups map[string]map[string]Entry
}

// LoadRegistry reads the tag registry file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tag registry: %w", err)
	}
	var groups map[string]map[string]Entry
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing tag registry %s: %w", path, err)
	}
	return &Registry{groups: groups}, nil
}

// IsValid reports whether tag is a well-formed "group:key" with a
// registry entry.
func (r *Registry) IsValid(tag string) bool {
	group, key, ok := strings.Cut(tag, ":")
	if !ok || group == "" || key == "" || key == groupMetaKey {
		return false
	}
	_, ok = r.groups[group][key]
	return ok
}

// GroupMeta returns the metadata entry for a tag group, if present.
func (r *Registry) GroupMeta(group string) (Entry, bool) {
	meta, ok := r.groups[group][groupMetaKey]
	return meta, ok
}

// Info returns the registry entry for a specific tag.
func (r *Registry) Info(tag string) (Entry, bool) {
	group, key, ok := strings.Cut(tag, ":")
	if !ok || key == groupMetaKey {
		return Entry{}, false
	}
	entry, ok := r.groups[group][key]
	return entry, ok
}
