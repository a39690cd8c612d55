package catalog

import "fmt"

// NotFoundError reports a lookup that matched no license after
// case normalization.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("license with SPDX ID %q not found", e.ID)
}

// MalformedRecordError reports a merged document that cannot be parsed or
// violates the record shape. Loading aborts on the first such document.
type MalformedRecordError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed license record %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed license record %s: %s", e.Path, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
