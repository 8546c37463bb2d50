// Package normalize turns raw model text into a decoded JSON value.
package normalize

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

// ErrUnparseable is returned when neither the raw text nor its cleaned form is valid JSON.
var ErrUnparseable = errors.New("failed to parse response into valid JSON")

const (
	fenceCutset = "`"
	// Cutset, not a prefix: any of j, s, o, n are trimmed from both edges.
	langTagCutset = "json"
)

// Result is a decoded model response.
type Result struct {
	// Value holds numbers as json.Number so large integers survive re-encoding.
	Value any
	// Cleaned reports whether the edge-trim fallback was needed.
	Cleaned bool
}

// Parse decodes raw strictly, and on failure retries once after trimming
// whitespace, backticks and the json tag characters from both edges.
func Parse(raw string) (Result, error) {
	if v, err := decode(raw); err == nil {
		return Result{Value: v}, nil
	}

	if v, err := decode(Clean(raw)); err == nil {
		return Result{Value: v, Cleaned: true}, nil
	}

	return Result{}, ErrUnparseable
}

// Clean applies the edge trims used by the fallback attempt.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, fenceCutset)
	return strings.Trim(s, langTagCutset)
}

var errInvalidJSON = errors.New("invalid json")

func decode(text string) (any, error) {
	data := []byte(text)
	// goccy accepts leading zeros and raw control characters in strings;
	// the grammar check has to come from encoding/json.
	if !stdjson.Valid(data) {
		return nil, errInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
