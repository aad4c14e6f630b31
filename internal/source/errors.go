package source

import (
	"errors"
	"fmt"
)

// Definition and lookup errors.
var (
	// ErrNilDefinition is returned when an entry carries no definition.
	ErrNilDefinition = errors.New("definition is nil")

	// ErrEmptyName is returned when an entry has no logical name.
	ErrEmptyName = errors.New("definition has an empty name")

	// ErrBaseURLsNotList is returned when a definition declares no base URL
	// list at all (a nil slice).
	ErrBaseURLsNotList = errors.New("base urls should be a list of strings")

	// ErrNoValidBaseURL is returned when none of the declared base URLs
	// survives normalization and filtering.
	ErrNoValidBaseURL = errors.New("base urls should contain at least one valid url")

	// ErrNilScraper is returned when a definition constructs a nil scraper.
	ErrNilScraper = errors.New("definition constructed a nil scraper")

	// ErrRejectedSource matches every *RejectedSourceError through errors.Is.
	ErrRejectedSource = errors.New("rejected source")

	// ErrAlreadyPopulated is returned by a second call to Registry.RegisterAll.
	ErrAlreadyPopulated = errors.New("registry is already populated")
)

// InvalidDefinitionError reports a scraper definition that cannot be
// registered. It aborts the whole population pass.
type InvalidDefinitionError struct {
	// Name is the logical name of the offending definition, if known.
	Name string

	// Reason is one of the definition sentinel errors.
	Reason error
}

// Error implements the error interface.
func (e *InvalidDefinitionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid scraper definition: %v", e.Reason)
	}
	return fmt.Sprintf("invalid scraper definition %s: %v", e.Name, e.Reason)
}

// Unwrap returns the underlying sentinel error.
func (e *InvalidDefinitionError) Unwrap() error {
	return e.Reason
}

// named returns a copy of e carrying the given definition name.
func (e *InvalidDefinitionError) named(name string) *InvalidDefinitionError {
	return &InvalidDefinitionError{Name: name, Reason: e.Reason}
}

// RejectedSourceError is returned when a URL points at a host listed in the
// rejection table. Reason is the configured human-readable explanation.
type RejectedSourceError struct {
	URL    string
	Host   string
	Reason string
}

// Error implements the error interface.
func (e *RejectedSourceError) Error() string {
	return fmt.Sprintf("rejected source %s: %s", e.Host, e.Reason)
}

// Is reports whether target is ErrRejectedSource.
func (e *RejectedSourceError) Is(target error) bool {
	return target == ErrRejectedSource
}
