package source

import (
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// defaultPorts maps a scheme to the port that is dropped from its hosts.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ftp":   "21",
}

// HostOf returns the canonical host of rawURL. It returns "" when rawURL
// has no parsable host, e.g. "not-a-url" or "javascript:void(0)".
//
// The canonical form is lowercase ASCII (IDNA), without a trailing dot,
// without userinfo and without the default port of the URL's scheme.
// Only the scheme and authority are looked at, so a bad escape in the
// path or fragment does not hide the host.
func HostOf(rawURL string) string {
	u := parseAuthority(rawURL)
	if u == nil {
		return ""
	}
	return canonicalHost(u.Scheme, u.Host)
}

// parseAuthority parses the scheme and authority of rawURL. It returns nil
// when there is no host. When the full URL does not parse, the part after
// "://" up to the first '/', '?' or '#' is parsed on its own.
func parseAuthority(rawURL string) *url.URL {
	raw := strings.TrimSpace(rawURL)
	u, err := url.Parse(raw)
	if err != nil {
		u, err = url.Parse(authorityPrefix(raw))
		if err != nil {
			return nil
		}
	}
	if u.Host == "" {
		return nil
	}
	return u
}

// authorityPrefix cuts raw after its authority: "https://a.com/x%" becomes
// "https://a.com".
func authorityPrefix(raw string) string {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return raw
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return scheme + "://" + rest
}

// CanonicalHost returns the canonical form of a bare host[:port] string, as
// used for rejection table keys. Ports are kept as given.
func CanonicalHost(hostport string) string {
	return canonicalHost("", strings.TrimSpace(hostport))
}

func canonicalHost(scheme, hostport string) string {
	host, port := hostport, ""
	if h, p, err := net.SplitHostPort(hostport); err == nil {
		host, port = h, p
	}

	// IPv6 literals without a port keep their brackets after SplitHostPort fails.
	if len(host) > 2 && host[0] == '[' && host[len(host)-1] == ']' {
		host = host[1 : len(host)-1]
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return ""
	}

	host = lowerHost(host)

	if port == "" || port == defaultPorts[strings.ToLower(scheme)] {
		return host
	}
	return net.JoinHostPort(host, port)
}

// lowerHost lowercases an ASCII host and converts a non-ASCII one to its
// punycode form. Hosts that IDNA refuses are lowercased as they are.
func lowerHost(host string) string {
	for i := 0; i < len(host); i++ {
		if host[i] >= utf8.RuneSelf {
			ascii, err := idna.Lookup.ToASCII(host)
			if err != nil {
				return strings.ToLower(host)
			}
			return strings.ToLower(ascii)
		}
	}
	return strings.ToLower(host)
}
