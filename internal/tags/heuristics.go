package tags

import (
	"strings"

	"github.com/licensedb/licensedb/internal/catalog"
)

// publicDomain lists PD and PD-equivalent licenses, safe for both content
// and data with no copyleft obligations.
var publicDomain = map[string]struct{}{
	"CC0-1.0":   {},
	"UNLICENSE": {},
	"0BSD":      {},
}

// Build computes the raw heuristic tag list for a license from its SPDX
// metadata. A license may receive multiple tags from the same group (for
// example domain:content and domain:data). Validation against the
// registry happens separately in Apply.
func Build(spdx catalog.SPDXInfo) []string {
	var list []string
	sid := strings.ToUpper(spdx.ID)

	if spdx.OSIApproved {
		list = append(list, "spdx:osi-approved")
	}
	if spdx.FSFLibre {
		list = append(list, "spdx:fsf-free")
	}
	if spdx.Deprecated {
		list = append(list, "spdx:deprecated")
	}

	if _, ok := publicDomain[sid]; ok {
		return append(list,
			"license:public-domain",
			"copyleft:none",
			"domain:content",
			"domain:data")
	}

	switch {
	case strings.HasPrefix(sid, "CC-"):
		list = append(list, "license:creative-commons", "family:CC", "domain:content")
		if strings.Contains(sid, "-BY-") {
			list = append(list, "notes:attribution-required")
		}
		if strings.Contains(sid, "-SA-") {
			list = append(list, "notes:share-alike")
		}
		// CC-BY / CC-BY-SA 4.0 are widely used for data as well.
		if hasAnyPrefix(sid, "CC-BY-", "CC-BY-SA-") && strings.HasSuffix(sid, "-4.0") {
			list = append(list, "domain:data")
		}

	case hasAnyPrefix(sid, "ODBL", "ODC-", "PDDL"):
		list = append(list, "license:open-data-commons", "family:ODC", "domain:data")
		if hasAnyPrefix(sid, "ODBL", "ODC-BY") {
			list = append(list, "notes:attribution-required", "notes:share-alike")
		}

	case hasAnyPrefix(sid, "OGL-", "NLOD-", "ETALAB-"):
		// Government open licenses usually cover both published reports
		// and open data files.
		list = append(list,
			"license:government-open-license",
			"domain:data",
			"domain:content",
			"notes:government-open-license",
			"notes:attribution-required")

	case strings.HasPrefix(sid, "GPL-"):
		list = append(list, "license:open-source", "family:GPL", "domain:software", "copyleft:strong")

	case strings.HasPrefix(sid, "AGPL-"):
		list = append(list, "license:open-source", "family:AGPL", "domain:software", "copyleft:network")

	case strings.HasPrefix(sid, "LGPL-"):
		list = append(list, "license:open-source", "family:LGPL", "domain:software", "copyleft:weak")

	case hasAnyPrefix(sid, "MPL-", "EPL-", "CDDL-"):
		list = append(list, "license:open-source", "domain:software", "copyleft:weak")

	case strings.HasPrefix(sid, "GFDL-"):
		list = append(list, "license:open-source", "domain:documentation", "domain:content")

	case hasAnyPrefix(sid, "MIT", "BSD-", "APACHE-", "ISC", "ZLIB"):
		list = append(list, "license:open-source", "domain:software", "copyleft:permissive")

	default:
		list = append(list, "license:open-source", "domain:software")
	}

	return list
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
