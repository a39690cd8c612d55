package merge

import (
	"fmt"
	"strings"

	"github.com/licensedb/licensedb/internal/rules"
)

// SourceUnavailableError reports a missing or unreadable upstream source.
// Any such failure is fatal for the whole run; no partial catalog is
// written.
type SourceUnavailableError struct {
	Source string
	Path   string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s source unavailable at %s: %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("%s source unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// UnknownLabelsError aggregates every unknown rule label found during a
// run. Classification covers the full SPDX set before failing, so one
// registry edit fixes the whole batch.
type UnknownLabelsError struct {
	Labels []rules.UnknownRuleLabelError
}

func (e *UnknownLabelsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d unknown rule label(s); no output written:", len(e.Labels))
	for i := range e.Labels {
		b.WriteString("\n  ")
		b.WriteString(e.Labels[i].Error())
	}
	return b.String()
}
