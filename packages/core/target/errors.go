package target

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSection is returned when an INI target has no [target] section.
	ErrMissingSection = errors.New("missing [target] section")

	// ErrNotMapping is returned when a YAML target document is not a mapping.
	ErrNotMapping = errors.New("document is not a mapping")

	// ErrAliasCycle is returned when a YAML alias refers to a node enclosing it.
	ErrAliasCycle = errors.New("alias refers to an enclosing node")

	// ErrMissingSectionHeader is returned for INI keys before the first section.
	ErrMissingSectionHeader = errors.New("key outside of any section")

	// ErrDuplicateSection is returned when an INI section is declared twice.
	ErrDuplicateSection = errors.New("duplicate section")

	// ErrDuplicateKey is returned when an INI key repeats within a section.
	ErrDuplicateKey = errors.New("duplicate key")
)

// NotFoundError reports a specification for which no target file exists.
type NotFoundError struct {
	Spec       string
	Candidates []string
}

func (e *NotFoundError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("target file %s does not exist", e.Spec)
	}
	return fmt.Sprintf("target file %s does not exist (tried %s)", e.Spec, strings.Join(e.Candidates, ", "))
}

// FormatError reports a target file that exists but cannot be used.
type FormatError struct {
	Path   string
	Format Format
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s target file %s: %v", e.Format, e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsFormat reports whether err is, or wraps, a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
