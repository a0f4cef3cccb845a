// internal/scenario/codec.go
package scenario

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// LoadFile reads a scenario input from a JSON file. The decoded record
// is returned raw; callers run it through Sanitize (or the engine, which
// sanitizes internally) before using it.
func LoadFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("scenario: read %q: %w", path, err)
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("scenario: parse %q: %w", path, err)
	}

	return in, nil
}

// Fingerprint returns a stable hex digest of the sanitized input. Two
// inputs that sanitize to the same record share a fingerprint, which
// makes it a safe memoization key for engine results.
func Fingerprint(in Input) string {
	canonical := Sanitize(in)
	canonical.Name = "" // label only, not part of the numeric domain

	data, err := json.Marshal(canonical)
	if err != nil {
		// Input is a plain value struct; Marshal cannot fail on it.
		return ""
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
