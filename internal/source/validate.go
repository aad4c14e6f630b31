package source

import (
	"regexp"
	"strings"
)

// baseURLPattern accepts absolute http, https and ftp URLs. The first host
// character may not be one of "/$.?#"; no further structure is checked.
var baseURLPattern = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#]\S*$`)

// NormalizeBaseURL trims surrounding whitespace and then any leading or
// trailing slashes from raw.
func NormalizeBaseURL(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), "/")
}

// IsValidBaseURL reports whether the already normalized u is an acceptable
// base URL.
func IsValidBaseURL(u string) bool {
	return baseURLPattern.MatchString(u)
}

// ValidateBaseURLs normalizes every candidate and keeps, in input order, the
// ones that are valid absolute URLs. Invalid entries are dropped silently.
//
// It returns an *InvalidDefinitionError wrapping ErrBaseURLsNotList when
// candidates is nil, and ErrNoValidBaseURL when nothing is left.
func ValidateBaseURLs(candidates []string) ([]string, error) {
	if candidates == nil {
		return nil, &InvalidDefinitionError{Reason: ErrBaseURLsNotList}
	}

	accepted := make([]string, 0, len(candidates))
	for _, c := range candidates {
		u := NormalizeBaseURL(c)
		if IsValidBaseURL(u) {
			accepted = append(accepted, u)
		}
	}

	if len(accepted) == 0 {
		return nil, &InvalidDefinitionError{Reason: ErrNoValidBaseURL}
	}
	return accepted, nil
}
