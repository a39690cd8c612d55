// Package merge reconciles the SPDX license list with choosealicense
// metadata and writes one normalized JSON document per license. Output is
// fully regenerated on every run; the write step may be filtered but
// classification never is, so a filtered run can never change outcomes
// relative to a full one.
package merge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/licensedb/licensedb/internal/catalog"
	"github.com/licensedb/licensedb/internal/rules"
)

const defaultWriters = 8

// Options control a merge run.
type Options struct {
	SPDXDir           string
	ChooseALicenseDir string
	OutDir            string
	RepoDir           string // working directory for --update-submodules
	OnlyUncategorized bool   // filter the write step to uncategorized records
	UpdateSubmodules  bool   // refresh upstream sources before merging
	Writers           int    // concurrent file writers, defaultWriters if 0
}

// Result summarizes a completed run.
type Result struct {
	Total         int `json:"total"`
	Categorized   int `json:"categorized"`
	Uncategorized int `json:"uncategorized"`
	Written       int `json:"written"`
}

// Merger performs the merge. It holds the rule registry for the lifetime
// of the run and treats it as immutable.
type Merger struct {
	opts Options
	reg  *rules.Registry
	log  *slog.Logger
}

// New creates a Merger over the given registry.
func New(opts Options, reg *rules.Registry, log *slog.Logger) *Merger {
	if opts.Writers <= 0 {
		opts.Writers = defaultWriters
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Merger{opts: opts, reg: reg, log: log}
}

// Run executes a full merge: optional source refresh, classification of
// every SPDX license, then the (possibly filtered) write step. If any
// rule label cannot be translated the run aborts with an
// UnknownLabelsError before writing anything.
func (m *Merger) Run(ctx context.Context) (*Result, error) {
	if m.opts.UpdateSubmodules {
		m.log.Info("updating upstream submodules", "dir", m.opts.RepoDir)
		if err := UpdateSubmodules(ctx, m.opts.RepoDir); err != nil {
			return nil, err
		}
	}

	spdx, err := LoadSPDX(m.opts.SPDXDir)
	if err != nil {
		return nil, err
	}
	m.log.Debug("loaded SPDX licenses", "count", len(spdx))

	choose, err := LoadChooseALicense(m.opts.ChooseALicenseDir)
	if err != nil {
		return nil, err
	}
	m.log.Debug("loaded choosealicense metadata", "count", len(choose))

	merged, err := m.classifyAll(spdx, choose)
	if err != nil {
		return nil, err
	}

	res := &Result{Total: len(merged)}
	for i := range merged {
		if merged[i].Categorized {
			res.Categorized++
		} else {
			res.Uncategorized++
		}
	}

	written, err := m.writeAll(ctx, merged)
	if err != nil {
		return nil, err
	}
	res.Written = written

	m.log.Info("merge complete",
		"total", res.Total,
		"categorized", res.Categorized,
		"uncategorized", res.Uncategorized,
		"written", res.Written)
	return res, nil
}

// classifyAll builds the merged record for every SPDX license, collecting
// unknown labels across the whole set before failing.
func (m *Merger) classifyAll(spdx map[string]catalog.SPDXInfo, choose map[string]Metadata) ([]catalog.License, error) {
	merged := make([]catalog.License, 0, len(spdx))
	var unknown []rules.UnknownRuleLabelError

	for id, info := range spdx {
		lic := catalog.NewLicense(info)
		key := strings.ToLower(id)

		if meta, ok := choose[key]; ok {
			lic.Categorized = true
			lic.Summary = meta.Description
			if lic.SPDX.Title == "" {
				lic.SPDX.Title = meta.Title
			}
			lic.Permissions = m.translate(id, rules.CategoryPermissions, meta.Permissions, &unknown)
			lic.Conditions = m.translate(id, rules.CategoryConditions, meta.Conditions, &unknown)
			lic.Limitations = m.translate(id, rules.CategoryLimitations, meta.Limitations, &unknown)
		} else if ov, ok := manualOverrides[key]; ok {
			lic.Categorized = true
			lic.Summary = ov.Summary
			lic.Permissions = m.translate(id, rules.CategoryPermissions, ov.Permissions, &unknown)
			lic.Conditions = m.translate(id, rules.CategoryConditions, ov.Conditions, &unknown)
			lic.Limitations = m.translate(id, rules.CategoryLimitations, ov.Limitations, &unknown)
		}

		merged = append(merged, lic)
	}

	if len(unknown) > 0 {
		return nil, &UnknownLabelsError{Labels: unknown}
	}
	return merged, nil
}

// translate maps upstream labels to registry names, accumulating failures
// instead of stopping at the first one.
func (m *Merger) translate(spdxID string, cat rules.Category, labels []string, unknown *[]rules.UnknownRuleLabelError) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		name, err := m.reg.Translate(cat, label)
		if err != nil {
			var ue *rules.UnknownRuleLabelError
			if errors.As(err, &ue) {
				ue.SPDXID = spdxID
				*unknown = append(*unknown, *ue)
			} else {
				*unknown = append(*unknown, rules.UnknownRuleLabelError{SPDXID: spdxID, Category: cat, Label: label})
			}
			continue
		}
		names = append(names, name)
	}
	return names
}

// writeAll serializes the merged records, honoring the uncategorized-only
// filter. Writes are independent per license and run on a bounded pool.
func (m *Merger) writeAll(ctx context.Context, merged []catalog.License) (int, error) {
	if err := os.MkdirAll(m.opts.OutDir, 0755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Writers)

	written := 0
	for i := range merged {
		lic := &merged[i]
		if m.opts.OnlyUncategorized && lic.Categorized {
			continue
		}
		written++
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeRecord(m.opts.OutDir, lic)
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return written, nil
}

// OutputFilename returns the document filename for an SPDX ID. Slashes
// are unusable in filenames and become underscores.
func OutputFilename(spdxID string) string {
	return strings.ReplaceAll(spdxID, "/", "_") + ".json"
}

func writeRecord(dir string, lic *catalog.License) error {
	data, err := json.MarshalIndent(lic, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", lic.SPDX.ID, err)
	}
	data = append(data, '\n')
	path := filepath.Join(dir, OutputFilename(lic.SPDX.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
