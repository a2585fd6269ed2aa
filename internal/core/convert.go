package core

// convert.go provides conversions for the boolean-as-string flag cells
// (export, editable, is_metadata).
//
// The schema is hand edited, so flags show up as True/False, true/false and
// occasionally yes/no or 1/0. ParseFlag returns a pgtype.Bool with
// Valid=false for empty or unrecognised text so callers can tell "unset" apart
// from "false".

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ParseFlag converts a flag cell to pgtype.Bool.
// Accepts various representations: true/false, yes/no, t/f, y/n, 1/0.
func ParseFlag(s string) pgtype.Bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return pgtype.Bool{Valid: false}
	}

	switch s {
	case "true", "t", "yes", "y", "1":
		return pgtype.Bool{Bool: true, Valid: true}
	case "false", "f", "no", "n", "0":
		return pgtype.Bool{Bool: false, Valid: true}
	default:
		return pgtype.Bool{Valid: false}
	}
}

// FormatFlag renders a flag the way the schema file spells it.
func FormatFlag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// HeaderIndex maps header field keys to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are the header cells with surrounding whitespace removed; matching is
// otherwise exact.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[headerKey(h)] = i
	}
	return idx
}

func headerKey(h string) string {
	return strings.TrimSpace(h)
}
