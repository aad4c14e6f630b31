package model

// ResolutionStatus is the outcome of resolving a query.
type ResolutionStatus string

const (
	// StatusMatched means a registered scraper serves the query.
	StatusMatched ResolutionStatus = "matched"

	// StatusNoMatch means no registered scraper serves the query.
	StatusNoMatch ResolutionStatus = "no_match"

	// StatusRejected means the query points at a rejected host.
	StatusRejected ResolutionStatus = "rejected"
)

// Resolution is the result of resolving one URL or scraper name.
type Resolution struct {
	// Query is the URL or name as given.
	Query string `json:"query"`

	// Host is the canonical host of a URL query.
	Host string `json:"host,omitempty"`

	// Status is the outcome.
	Status ResolutionStatus `json:"status"`

	// Scraper is the logical name of the matched scraper.
	Scraper string `json:"scraper,omitempty"`

	// BaseURLs are the base URLs of the matched scraper.
	BaseURLs []string `json:"base_urls,omitempty"`

	// Reason is the rejection reason when Status is StatusRejected.
	Reason string `json:"reason,omitempty"`
}

// Matched reports whether a scraper was found.
func (r Resolution) Matched() bool {
	return r.Status == StatusMatched
}

// Rejected reports whether the query hit a rejected host.
func (r Resolution) Rejected() bool {
	return r.Status == StatusRejected
}

// ResolutionSummary counts resolutions by status.
type ResolutionSummary struct {
	Matched  int `json:"matched"`
	NoMatch  int `json:"no_match"`
	Rejected int `json:"rejected"`
}

// SummarizeResolutions counts rs by status.
func SummarizeResolutions(rs []Resolution) ResolutionSummary {
	var s ResolutionSummary
	for _, r := range rs {
		switch r.Status {
		case StatusMatched:
			s.Matched++
		case StatusRejected:
			s.Rejected++
		default:
			s.NoMatch++
		}
	}
	return s
}
