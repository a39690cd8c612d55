package merge

// Override is a hand-maintained classification for a license that
// choosealicense does not carry. Entries use registry rule names directly,
// not upstream labels, and are validated against the registry at merge
// time like any other classification.
type Override struct {
	Permissions []string
	Conditions  []string
	Limitations []string
	Summary     string
}

// manualOverrides is keyed by lowercased SPDX ID.
var manualOverrides = map[string]Override{
	"mit-0": {
		Permissions: []string{"commercial-use", "distribution", "modifications", "private-use"},
		Conditions:  []string{},
		Limitations: []string{"liability", "warranty"},
		Summary:     "The MIT No Attribution license: MIT without the requirement to preserve the copyright notice.",
	},
	"odc-by-1.0": {
		Permissions: []string{"commercial-use", "distribution", "modifications", "private-use"},
		Conditions:  []string{"include-copyright"},
		Limitations: []string{"liability", "warranty"},
		Summary:     "Open Data Commons Attribution: use and share databases freely, with attribution.",
	},
	"fsfap": {
		Permissions: []string{"commercial-use", "distribution", "modifications", "private-use"},
		Conditions:  []string{},
		Limitations: []string{"warranty"},
		Summary:     "The FSF All Permissive license, used for short configuration and build scripts.",
	},
}
