package merge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/licensedb/licensedb/internal/catalog"
)

// spdxDetail mirrors the fields consumed from an SPDX license details
// document (one per license under the SPDX source directory).
type spdxDetail struct {
	LicenseID     string   `json:"licenseId"`
	Name          string   `json:"name"`
	Reference     string   `json:"reference"`
	SeeAlso       []string `json:"seeAlso"`
	IsOsiApproved bool     `json:"isOsiApproved"`
	IsFsfLibre    bool     `json:"isFsfLibre"`
	IsDeprecated  bool     `json:"isDeprecatedLicenseId"`
}

// LoadSPDX reads every SPDX details document under dir, keyed by SPDX ID.
// A missing directory or a document that cannot be parsed makes the whole
// source unavailable.
func LoadSPDX(dir string) (map[string]catalog.SPDXInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &SourceUnavailableError{Source: "SPDX", Path: dir, Err: err}
	}

	licenses := make(map[string]catalog.SPDXInfo)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &SourceUnavailableError{Source: "SPDX", Path: path, Err: err}
		}
		var detail spdxDetail
		if err := json.Unmarshal(data, &detail); err != nil {
			return nil, &SourceUnavailableError{Source: "SPDX", Path: path, Err: err}
		}
		if detail.LicenseID == "" {
			return nil, &SourceUnavailableError{Source: "SPDX", Path: path, Err: fmt.Errorf("missing licenseId")}
		}
		licenses[detail.LicenseID] = detail.info()
	}
	if len(licenses) == 0 {
		return nil, &SourceUnavailableError{Source: "SPDX", Path: dir, Err: fmt.Errorf("no license documents found")}
	}
	return licenses, nil
}

func (d spdxDetail) info() catalog.SPDXInfo {
	url := d.Reference
	if url == "" && len(d.SeeAlso) > 0 {
		url = d.SeeAlso[0]
	}
	return catalog.SPDXInfo{
		ID:          d.LicenseID,
		Title:       d.Name,
		URL:         url,
		OSIApproved: d.IsOsiApproved,
		FSFLibre:    d.IsFsfLibre,
		Deprecated:  d.IsDeprecated,
	}
}
