package core

// validation.go checks what the derivation rules need from the schema file,
// and nothing more:
//  1. Header validation: every required field is present, no field repeats
//  2. Row validation: the row fits the header and carries the cells the rules
//     read (column_name, measurement_type, description)
//
// Flag cells are only inspected for warnings; an odd flag value never stops a
// run.

import (
	"fmt"
	"strings"
)

const (
	msgMissingField   = "missing required column"
	msgDuplicateField = "duplicate header field"
	msgEmptyField     = "required field is empty"
	msgTooManyCells   = "row has more cells than the header"
	msgUnknownFlag    = "unrecognised flag value"
)

// ValidationError describes a single problem with the header or a row.
// Line is the 1-based line of the record in the file; 0 means not applicable.
type ValidationError struct {
	Field   string // Field/column name
	Line    int    // Record line number
	Value   string // The offending value
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}
	b.WriteString(e.Message)
	if e.Value != "" {
		fmt.Fprintf(&b, " (%q)", e.Value)
	}
	return b.String()
}

// ValidateHeaders validates that all required fields exist in the header and
// that no field appears twice. Returns the header index on success.
func ValidateHeaders(header []string) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	if len(idx) < len(header) {
		seen := make(map[string]bool, len(header))
		for _, h := range header {
			key := headerKey(h)
			if seen[key] {
				return nil, &ValidationError{Field: key, Line: 1, Message: msgDuplicateField}
			}
			seen[key] = true
		}
	}

	var missing []string
	for _, f := range RequiredFields() {
		if _, ok := idx[f]; !ok {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return nil, &ValidationError{
			Field:   strings.Join(missing, ", "),
			Line:    1,
			Message: msgMissingField,
		}
	}

	return idx, nil
}

// ValidateRow checks that a row can be turned into a ColumnRecord.
// Rows shorter than the header are accepted as long as the cells the rules
// read are present; missing trailing cells become empty values.
func ValidateRow(row []string, idx HeaderIndex, line int) error {
	if len(row) > len(idx) {
		return &ValidationError{Line: line, Message: msgTooManyCells}
	}

	for _, f := range []string{FieldColumnName, FieldMeasurementType, FieldDescription} {
		if idx[f] >= len(row) {
			return &ValidationError{Field: f, Line: line, Message: msgMissingField}
		}
	}

	if strings.TrimSpace(row[idx[FieldColumnName]]) == "" {
		return &ValidationError{Field: FieldColumnName, Line: line, Message: msgEmptyField}
	}

	return nil
}

// FlagWarnings reports flag cells that are set but not recognisable as a
// boolean. An empty flag is treated as unset and not reported.
func FlagWarnings(rec ColumnRecord) []ValidationError {
	var warnings []ValidationError
	for _, f := range []string{FieldExport, FieldEditable, FieldIsMetadata} {
		v := rec.Get(f)
		if strings.TrimSpace(v) != "" && !ParseFlag(v).Valid {
			warnings = append(warnings, ValidationError{
				Field:   f,
				Value:   v,
				Message: msgUnknownFlag,
			})
		}
	}
	return warnings
}
