package core

import (
	"fmt"
	"strings"
)

// coordinateSuffix pairs a column-name suffix with the description template
// of the derived column. The template receives the source description.
type coordinateSuffix struct {
	suffix      string
	description string
}

// coordinateSuffixes is the fixed expansion order for length columns.
var coordinateSuffixes = [...]coordinateSuffix{
	{"_x_start", "Starting X for %s"},
	{"_y_start", "Starting y for %s"},
	{"_x_end", "Ending X for %s"},
	{"_y_end", "Ending y for %s"},
}

const (
	axisSuffixX    = "_x"
	axisSuffixY    = "_y"
	reviewedSuffix = "_reviewed"
)

// RuleResult records what a rule did to the table.
type RuleResult struct {
	Rule    string
	Added   []string // derived columns appended, in order
	Skipped []string // target names already present, left untouched
}

func (r *RuleResult) record(t *Table, rec ColumnRecord) {
	if t.Add(rec) {
		r.Added = append(r.Added, rec.Name)
	} else {
		r.Skipped = append(r.Skipped, rec.Name)
	}
}

// isLengthLike reports whether a measurement type gets coordinate columns.
func isLengthLike(measurementType string) bool {
	return measurementType == TypeLength || measurementType == TypeAutoLength
}

// isReviewable reports whether a measurement type gets a reviewed flag.
func isReviewable(measurementType string) bool {
	return measurementType == TypePoint || measurementType == TypeLength
}

// ExpandCoordinates appends start/end coordinate columns for every candidate
// whose measurement type is "length" or "auto length".
//
// candidates is the list of column names to consider; columns created here
// are not in it and so are never expanded themselves.
func ExpandCoordinates(t *Table, candidates []string) RuleResult {
	res := RuleResult{Rule: "coordinates"}

	for _, name := range candidates {
		src, ok := t.Get(name)
		if !ok || !isLengthLike(src.MeasurementType) {
			continue
		}
		for _, cs := range coordinateSuffixes {
			res.record(t, derivedRecord(
				name+cs.suffix,
				fmt.Sprintf(cs.description, src.Description),
				"pixels",
				TypeAutoPoint,
			))
		}
	}

	return res
}

// ReviewFlags appends one boolean "<base>_reviewed" column for every
// candidate whose measurement type is "point" or "length".
//
// Points are stored as a *_x / *_y pair sharing one flag: the _y half is
// skipped and the _x half names the flag after its base.
func ReviewFlags(t *Table, candidates []string) RuleResult {
	res := RuleResult{Rule: "reviews"}

	for _, name := range candidates {
		src, ok := t.Get(name)
		if !ok || !isReviewable(src.MeasurementType) {
			continue
		}
		base, ok := reviewBaseName(name, src.MeasurementType)
		if !ok {
			continue
		}
		res.record(t, derivedRecord(
			base+reviewedSuffix,
			fmt.Sprintf("Review of %s %s", base, src.MeasurementType),
			"boolean",
			TypeBoolean,
		))
	}

	return res
}

// reviewBaseName returns the name a reviewed flag is derived from, or false
// if the column is the _y half of a point pair.
func reviewBaseName(name, measurementType string) (string, bool) {
	if measurementType == TypePoint && strings.HasSuffix(name, axisSuffixY) {
		return "", false
	}
	return strings.TrimSuffix(name, axisSuffixX), true
}
