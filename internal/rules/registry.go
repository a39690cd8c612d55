// Package rules loads the shared rule registry and translates upstream
// rule labels into registry names. Rules are defined once in the registry
// file and referenced by name from license documents; the translation
// layer is an explicit lookup, never fuzzy matching.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Category identifies which of the three rule groups a rule belongs to.
type Category string

const (
	CategoryPermissions Category = "permissions"
	CategoryConditions  Category = "conditions"
	CategoryLimitations Category = "limitations"
)

// Categories returns the rule categories in canonical order.
func Categories() []Category {
	return []Category{CategoryPermissions, CategoryConditions, CategoryLimitations}
}

// Rule is a single registry entry.
type Rule struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Registry holds the rule definitions for all three categories, indexed
// by category and name after loading.
type Registry struct {
	Permissions []Rule `json:"permissions"`
	Conditions  []Rule `json:"conditions"`
	Limitations []Rule `json:"limitations"`

	byName map[Category]map[string]Rule
}

// Load reads and indexes the registry file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule registry: %w", err)
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing rule registry %s: %w", path, err)
	}
	if err := reg.index(); err != nil {
		return nil, fmt.Errorf("rule registry %s: %w", path, err)
	}
	return &reg, nil
}

func (r *Registry) index() error {
	r.byName = make(map[Category]map[string]Rule, 3)
	for cat, entries := range map[Category][]Rule{
		CategoryPermissions: r.Permissions,
		CategoryConditions:  r.Conditions,
		CategoryLimitations: r.Limitations,
	} {
		seen := make(map[string]Rule, len(entries))
		for _, rule := range entries {
			if rule.Name == "" {
				return fmt.Errorf("%s: rule with empty name", cat)
			}
			if _, dup := seen[rule.Name]; dup {
				return fmt.Errorf("%s: duplicate rule name %q", cat, rule.Name)
			}
			seen[rule.Name] = rule
		}
		r.byName[cat] = seen
	}
	return nil
}

// Has reports whether name exists in the given category.
func (r *Registry) Has(cat Category, name string) bool {
	_, ok := r.byName[cat][name]
	return ok
}

// Get returns the rule registered under name in the given category.
func (r *Registry) Get(cat Category, name string) (Rule, bool) {
	rule, ok := r.byName[cat][name]
	return rule, ok
}

// Names returns the sorted rule names for a category.
func (r *Registry) Names(cat Category) []string {
	names := make([]string, 0, len(r.byName[cat]))
	for name := range r.byName[cat] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// labelAliases maps upstream label spellings that differ from registry
// names. choosealicense labels are already kebab-case registry names, so
// this table only covers spellings seen in older data dumps.
var labelAliases = map[string]string{
	"commercial use":     "commercial-use",
	"private use":        "private-use",
	"patent use":         "patent-use",
	"trademark use":      "trademark-use",
	"disclose source":    "disclose-source",
	"document changes":   "document-changes",
	"include copyright":  "include-copyright",
	"same license":       "same-license",
	"network use is distribution": "network-use-disclose",
}

// Translate resolves an upstream rule label to a registry name within the
// given category. The label is normalized (lowercased, spaces to dashes)
// and checked against the alias table and the registry; an unresolved
// label is an UnknownRuleLabelError.
func (r *Registry) Translate(cat Category, label string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	name := key
	if alias, ok := labelAliases[key]; ok {
		name = alias
	} else {
		name = strings.ReplaceAll(key, " ", "-")
	}
	if !r.Has(cat, name) {
		return "", &UnknownRuleLabelError{Category: cat, Label: label}
	}
	return name, nil
}

// UnknownRuleLabelError reports an upstream rule label with no registry
// entry. SPDXID is filled in by callers that know which license carried
// the label.
type UnknownRuleLabelError struct {
	SPDXID   string
	Category Category
	Label    string
}

func (e *UnknownRuleLabelError) Error() string {
	if e.SPDXID != "" {
		return fmt.Sprintf("license %s: unknown %s label %q", e.SPDXID, e.Category, e.Label)
	}
	return fmt.Sprintf("unknown %s label %q", e.Category, e.Label)
}
