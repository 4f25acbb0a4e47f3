package session

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint derives the hex SHA-256 digest of id.
func Fingerprint(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

// Activate logs the activation notice and the session fingerprint, and
// returns the fingerprint. The shell calls it once before reading input;
// repeat calls log again with the same fingerprint.
func Activate(s Session) string {
	s.Log("GENESIS activated. Binding ritual keys…")
	fp := Fingerprint(s.ID())
	s.Log("GENESIS ID: " + fp)
	return fp
}
