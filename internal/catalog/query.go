package catalog

import (
	"iter"
	"strings"
)

// Counts summarizes catalog size by categorization state.
type Counts struct {
	Total         int `json:"total"`
	Categorized   int `json:"categorized"`
	Uncategorized int `json:"uncategorized"`
}

// Count returns the total license count and the categorized and
// uncategorized subset counts.
func (c *Catalog) Count() Counts {
	counts := Counts{Total: len(c.licenses)}
	for i := range c.licenses {
		if c.licenses[i].Categorized {
			counts.Categorized++
		} else {
			counts.Uncategorized++
		}
	}
	return counts
}

// Filter selects which licenses List yields.
type Filter int

const (
	FilterAll Filter = iota
	FilterCategorized
	FilterUncategorized
)

func (f Filter) matches(lic *License) bool {
	switch f {
	case FilterCategorized:
		return lic.Categorized
	case FilterUncategorized:
		return !lic.Categorized
	default:
		return true
	}
}

// List yields SPDX IDs in ordinal sort order, optionally filtered by
// categorization state.
func (c *Catalog) List(f Filter) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range c.licenses {
			if !f.matches(&c.licenses[i]) {
				continue
			}
			if !yield(c.licenses[i].SPDX.ID) {
				return
			}
		}
	}
}

// Summary extends Counts with the number of distinct rule names in use
// across categorized licenses.
type Summary struct {
	Counts
	DistinctPermissions int `json:"distinctPermissions"`
	DistinctConditions  int `json:"distinctConditions"`
	DistinctLimitations int `json:"distinctLimitations"`
}

// Summarize returns counts grouped by categorized state plus distinct rule
// usage across the categorized subset.
func (c *Catalog) Summarize() Summary {
	perms := make(map[string]struct{})
	conds := make(map[string]struct{})
	limits := make(map[string]struct{})
	for i := range c.licenses {
		lic := &c.licenses[i]
		if !lic.Categorized {
			continue
		}
		for _, name := range lic.Permissions {
			perms[name] = struct{}{}
		}
		for _, name := range lic.Conditions {
			conds[name] = struct{}{}
		}
		for _, name := range lic.Limitations {
			limits[name] = struct{}{}
		}
	}
	return Summary{
		Counts:              c.Count(),
		DistinctPermissions: len(perms),
		DistinctConditions:  len(conds),
		DistinctLimitations: len(limits),
	}
}

// Get looks up a license by SPDX ID, case-insensitively. The returned
// record carries the ID as stored.
func (c *Catalog) Get(id string) (*License, error) {
	if lic, ok := c.byLower[strings.ToLower(id)]; ok {
		return lic, nil
	}
	return nil, &NotFoundError{ID: id}
}
