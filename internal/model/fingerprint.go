package model

import (
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// ComputeFingerprint returns the SHA3-256 digest, hex encoded, of the
// report's scrapers and exclusions in order. GeneratedAt and ConfigFile do
// not contribute.
func (r *RegistryReport) ComputeFingerprint() string {
	h := sha3.New256()
	for _, s := range r.Scrapers {
		writeRecord(h, append([]string{"scraper", s.Name}, s.BaseURLs...)...)
	}
	for _, e := range r.Exclusions {
		writeRecord(h, "excluded", e.Name, e.Host, e.Reason)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// writeRecord writes the field count followed by each field prefixed with
// its byte length, so no field content can shift a record boundary.
func writeRecord(w io.Writer, fields ...string) {
	fmt.Fprintf(w, "%d", len(fields))
	for _, f := range fields {
		fmt.Fprintf(w, "|%d:%s", len(f), f)
	}
	_, _ = io.WriteString(w, "\n") //nolint:errcheck // hash writes never fail
}
