package source

import (
	"net"
	"strings"
)

// Policy decides whether a URL points at a rejected host. A nil *Policy
// rejects nothing.
type Policy struct {
	reasons map[string]string
}

// NewPolicy builds a Policy from a host to reason table. Keys are
// canonicalized with CanonicalHost; the table itself is not retained.
func NewPolicy(table map[string]string) *Policy {
	p := &Policy{reasons: make(map[string]string, len(table))}
	for host, reason := range table {
		if key := CanonicalHost(host); key != "" {
			p.reasons[key] = reason
		}
	}
	return p
}

// Len returns the number of rejected hosts.
func (p *Policy) Len() int {
	if p == nil {
		return 0
	}
	return len(p.reasons)
}

// Reason returns the rejection reason for rawURL's host.
//
// A table key carrying the default port of rawURL's scheme, such as
// "example.org:443", matches https URLs on that host with or without the
// explicit port.
func (p *Policy) Reason(rawURL string) (string, bool) {
	if p == nil {
		return "", false
	}
	u := parseAuthority(rawURL)
	if u == nil {
		return "", false
	}
	host := canonicalHost(u.Scheme, u.Host)
	if host == "" {
		return "", false
	}
	if reason, ok := p.reasons[host]; ok {
		return reason, true
	}

	port := defaultPorts[strings.ToLower(u.Scheme)]
	if port == "" || (u.Port() != "" && u.Port() != port) {
		return "", false
	}
	reason, ok := p.reasons[net.JoinHostPort(host, port)]
	return reason, ok
}

// IsRejected reports whether rawURL's host is in the rejection table.
// Malformed URLs have no host and are never rejected.
func (p *Policy) IsRejected(rawURL string) bool {
	_, ok := p.Reason(rawURL)
	return ok
}

// RejectIfRejected returns a *RejectedSourceError carrying the configured
// reason when rawURL's host is rejected, and nil otherwise.
func (p *Policy) RejectIfRejected(rawURL string) error {
	reason, ok := p.Reason(rawURL)
	if !ok {
		return nil
	}
	return &RejectedSourceError{
		URL:    rawURL,
		Host:   HostOf(rawURL),
		Reason: reason,
	}
}
