// Package graphio holds the console collaborators of the algorithm
// packages: a token reader that turns stdin into a core.Graph and writers
// that render results as a text table, JSON or YAML.
package graphio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for input parsing.
var (
	// ErrMalformedInput indicates a token that is not a valid integer, or a negative count.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrUnexpectedEOF indicates that input ended before the dialogue was complete.
	ErrUnexpectedEOF = errors.New("graphio: unexpected end of input")

	// ErrUnknownFormat indicates an output format other than table, json or yaml.
	ErrUnknownFormat = errors.New("graphio: unknown output format")
)

// Format selects how results are rendered.
type Format string

const (
	// FormatTable is the classic console layout.
	FormatTable Format = "table"

	// FormatJSON renders one indented JSON document.
	FormatJSON Format = "json"

	// FormatYAML renders one YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
