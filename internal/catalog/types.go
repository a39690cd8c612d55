// Package catalog loads and queries the merged per-license documents.
// The catalog is read-only: documents are fully regenerated by the merger
// and loaded once per invocation here.
package catalog

// SPDXInfo is the nested SPDX metadata block of a merged document.
type SPDXInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	OSIApproved bool   `json:"osiApproved,omitempty"`
	FSFLibre    bool   `json:"fsfLibre,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

// License is one merged license document. Rule lists hold registry names,
// never inline rule definitions. An uncategorized license has all three
// lists present and empty.
type License struct {
	SPDX        SPDXInfo `json:"spdx"`
	Categorized bool     `json:"categorized"`
	Permissions []string `json:"permissions"`
	Conditions  []string `json:"conditions"`
	Limitations []string `json:"limitations"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// NewLicense returns a License for the given SPDX metadata with empty,
// non-nil rule lists so they serialize as [] rather than null.
func NewLicense(spdx SPDXInfo) License {
	return License{
		SPDX:        spdx,
		Permissions: []string{},
		Conditions:  []string{},
		Limitations: []string{},
	}
}
