// Package fingerprint computes short, deterministic content digests for
// cache-key style deduplication.
//
// The digest is a 32-bit rolling hash rendered in base 36. It is NOT a
// cryptographic hash and collisions are expected at scale: never use it for
// integrity checks, signatures or secrets. The exact algorithm is kept stable
// because stored cache keys depend on its output.
package fingerprint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"
)

// Generate returns the fingerprint of v.
//
// v is first rendered as canonical JSON: object keys are sorted at every
// depth, so two structurally equal maps or structs fingerprint identically
// regardless of key order. An error is returned only when v cannot be encoded
// as JSON.
func Generate(v any) (string, error) {
	canonical, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	return Sum(canonical), nil
}

// MustGenerate is like Generate but panics if v cannot be encoded.
func MustGenerate(v any) string {
	fp, err := Generate(v)
	if err != nil {
		panic(err)
	}
	return fp
}

// Sum folds s into the 32-bit accumulator and renders its absolute value in
// base 36. The string is processed as UTF-16 code units.
func Sum(s string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 36)
}

// Canonicalize renders v as JSON with sorted object keys and no HTML escaping.
func Canonicalize(v any) (string, error) {
	raw, err := encode(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: encode input: %w", err)
	}

	// Decoding into an untyped tree and encoding again sorts the keys of
	// struct-derived objects too; encoding/json always sorts map keys.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return "", fmt.Errorf("fingerprint: normalize input: %w", err)
	}

	out, err := encode(tree)
	if err != nil {
		return "", fmt.Errorf("fingerprint: encode canonical form: %w", err)
	}
	return string(out), nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
