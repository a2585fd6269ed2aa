package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func column(name, measurementType, description string) ColumnRecord {
	return ColumnRecord{
		Name:            name,
		Description:     description,
		Units:           "pixels",
		MeasurementType: measurementType,
		Export:          "True",
		Editable:        "True",
		IsMetadata:      "False",
	}
}

func newTestTable(t *testing.T, recs ...ColumnRecord) *Table {
	t.Helper()
	tbl := NewTable(RequiredFields())
	for _, r := range recs {
		if !tbl.Add(r) {
			t.Fatalf("duplicate test column %q", r.Name)
		}
	}
	return tbl
}

func mustGet(t *testing.T, tbl *Table, name string) ColumnRecord {
	t.Helper()
	rec, ok := tbl.Get(name)
	if !ok {
		t.Fatalf("column %q missing", name)
	}
	return rec
}

// ============================================================================
// Coordinate expansion
// ============================================================================

func TestAugment_LengthColumn(t *testing.T) {
	tbl := newTestTable(t, column("headLength", TypeLength, "Head length"))

	report := Augment(tbl)

	wantAdded := []string{
		"headLength_x_start",
		"headLength_y_start",
		"headLength_x_end",
		"headLength_y_end",
		"headLength_reviewed",
	}
	if diff := cmp.Diff(wantAdded, report.Added()); diff != "" {
		t.Errorf("Added() mismatch (-want +got):\n%s", diff)
	}

	wantDesc := map[string]string{
		"headLength_x_start": "Starting X for Head length",
		"headLength_y_start": "Starting y for Head length",
		"headLength_x_end":   "Ending X for Head length",
		"headLength_y_end":   "Ending y for Head length",
	}
	for name, desc := range wantDesc {
		got := mustGet(t, tbl, name)
		want := ColumnRecord{
			Name:            name,
			Description:     desc,
			Units:           "pixels",
			MeasurementType: TypeAutoPoint,
			Export:          "False",
			Editable:        "False",
			IsMetadata:      "False",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	reviewed := mustGet(t, tbl, "headLength_reviewed")
	want := ColumnRecord{
		Name:            "headLength_reviewed",
		Description:     "Review of headLength length",
		Units:           "boolean",
		MeasurementType: TypeBoolean,
		Export:          "False",
		Editable:        "False",
		IsMetadata:      "False",
	}
	if diff := cmp.Diff(want, reviewed); diff != "" {
		t.Errorf("headLength_reviewed mismatch (-want +got):\n%s", diff)
	}
}

func TestAugment_AutoLengthGetsCoordinatesOnly(t *testing.T) {
	tbl := newTestTable(t, column("flukeWidth", TypeAutoLength, "Fluke width"))

	report := Augment(tbl)

	want := []string{
		"flukeWidth_x_start",
		"flukeWidth_y_start",
		"flukeWidth_x_end",
		"flukeWidth_y_end",
	}
	if diff := cmp.Diff(want, report.Added()); diff != "" {
		t.Errorf("Added() mismatch (-want +got):\n%s", diff)
	}
	if len(report.Reviews.Added) != 0 {
		t.Errorf("auto length should not get a reviewed flag, got %v", report.Reviews.Added)
	}
}

func TestAugment_DescriptionComesFromSourceDescription(t *testing.T) {
	tbl := newTestTable(t, column("len1", TypeLength, "Total body length"))

	Augment(tbl)

	if got := mustGet(t, tbl, "len1_y_end").Description; got != "Ending y for Total body length" {
		t.Errorf("len1_y_end description = %q", got)
	}
	if got := mustGet(t, tbl, "len1_reviewed").Description; got != "Review of len1 length" {
		t.Errorf("len1_reviewed description = %q, want %q", got, "Review of len1 length")
	}
}

// ============================================================================
// Review flags
// ============================================================================

func TestAugment_PointPairGetsOneReviewFlag(t *testing.T) {
	tbl := newTestTable(t,
		column("eye_x", TypePoint, "Eye X"),
		column("eye_y", TypePoint, "Eye Y"),
	)

	report := Augment(tbl)

	if diff := cmp.Diff([]string{"eye_reviewed"}, report.Added()); diff != "" {
		t.Errorf("Added() mismatch (-want +got):\n%s", diff)
	}
	rec := mustGet(t, tbl, "eye_reviewed")
	if rec.Description != "Review of eye point" {
		t.Errorf("eye_reviewed description = %q, want %q", rec.Description, "Review of eye point")
	}
	if tbl.Has("eye_y_reviewed") {
		t.Error("eye_y must not produce a reviewed flag")
	}
}

func TestReviewBaseName(t *testing.T) {
	tests := []struct {
		name            string
		column          string
		measurementType string
		wantBase        string
		wantOK          bool
	}{
		{"point x half", "eye_x", TypePoint, "eye", true},
		{"point y half skipped", "eye_y", TypePoint, "", false},
		{"unpaired point", "tip", TypePoint, "tip", true},
		{"length keeps name", "len1", TypeLength, "len1", true},
		{"length ending in _x is stripped", "span_x", TypeLength, "span", true},
		{"length ending in _y is not skipped", "span_y", TypeLength, "span_y", true},
		{"only a trailing _x is stripped", "x_axis", TypePoint, "x_axis", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ok := reviewBaseName(tt.column, tt.measurementType)
			if ok != tt.wantOK || base != tt.wantBase {
				t.Errorf("reviewBaseName(%q, %q) = (%q, %v), want (%q, %v)",
					tt.column, tt.measurementType, base, ok, tt.wantBase, tt.wantOK)
			}
		})
	}
}

func TestAugment_OtherTypesPassThrough(t *testing.T) {
	tbl := newTestTable(t,
		column("image", "text", "Image file"),
		column("tip_x", TypeAutoPoint, "Tip X"),
		column("seen", TypeBoolean, "Seen"),
		column("Length", "Length", "Capitalised type is not a rule type"),
	)

	report := Augment(tbl)

	if added := report.Added(); len(added) != 0 {
		t.Errorf("expected no derived columns, got %v", added)
	}
	if tbl.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tbl.Len())
	}
}

func TestReviewFlags_OnlyConsidersCandidates(t *testing.T) {
	tbl := newTestTable(t,
		column("len1", TypeLength, "Length one"),
		column("tip", TypePoint, "Tip"),
	)

	res := ReviewFlags(tbl, []string{"len1"})

	if diff := cmp.Diff([]string{"len1_reviewed"}, res.Added); diff != "" {
		t.Errorf("Added mismatch (-want +got):\n%s", diff)
	}
	if tbl.Has("tip_reviewed") {
		t.Error("column outside the candidate list was flagged")
	}
}

func TestExpandCoordinates_IgnoresUnknownCandidates(t *testing.T) {
	tbl := newTestTable(t, column("len1", TypeLength, "Length one"))

	res := ExpandCoordinates(tbl, []string{"missing", "len1"})

	if len(res.Added) != 4 {
		t.Errorf("Added = %v, want 4 coordinate columns", res.Added)
	}
}

// ============================================================================
// Table-level properties
// ============================================================================

func TestAugment_SkipsExistingTargets(t *testing.T) {
	existing := ColumnRecord{
		Name:            "headLength_x_start",
		Description:     "Hand-written start",
		Units:           "px",
		MeasurementType: TypeAutoPoint,
		Export:          "True",
		Editable:        "True",
		IsMetadata:      "False",
	}
	existingFlag := ColumnRecord{
		Name:            "headLength_reviewed",
		Description:     "Reviewed by hand",
		Units:           "boolean",
		MeasurementType: TypeBoolean,
		Export:          "True",
		Editable:        "True",
		IsMetadata:      "False",
	}
	tbl := newTestTable(t,
		column("headLength", TypeLength, "Head length"),
		existing,
		existingFlag,
	)

	report := Augment(tbl)

	if diff := cmp.Diff(existing, mustGet(t, tbl, "headLength_x_start")); diff != "" {
		t.Errorf("existing coordinate column changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(existingFlag, mustGet(t, tbl, "headLength_reviewed")); diff != "" {
		t.Errorf("existing reviewed column changed (-want +got):\n%s", diff)
	}

	wantSkipped := []string{"headLength_x_start", "headLength_reviewed"}
	if diff := cmp.Diff(wantSkipped, report.Skipped()); diff != "" {
		t.Errorf("Skipped() mismatch (-want +got):\n%s", diff)
	}
	wantAdded := []string{"headLength_y_start", "headLength_x_end", "headLength_y_end"}
	if diff := cmp.Diff(wantAdded, report.Added()); diff != "" {
		t.Errorf("Added() mismatch (-want +got):\n%s", diff)
	}
}

func TestAugment_Idempotent(t *testing.T) {
	tbl := newTestTable(t,
		column("image", "text", "Image file"),
		column("headLength", TypeLength, "Head length"),
		column("eye_x", TypePoint, "Eye X"),
		column("eye_y", TypePoint, "Eye Y"),
		column("flukeWidth", TypeAutoLength, "Fluke width"),
	)

	first := Augment(tbl)
	afterFirst := tbl.Records()

	second := Augment(tbl)

	if added := second.Added(); len(added) != 0 {
		t.Errorf("second pass added %v", added)
	}
	if diff := cmp.Diff(first.Added(), second.Skipped()); diff != "" {
		t.Errorf("second pass should skip exactly the first pass output (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(afterFirst, tbl.Records()); diff != "" {
		t.Errorf("table changed on second pass (-want +got):\n%s", diff)
	}
}

func TestAugment_OrderPreservedAndAppendOrder(t *testing.T) {
	tbl := newTestTable(t,
		column("image", "text", "Image file"),
		column("headLength", TypeLength, "Head length"),
		column("eye_x", TypePoint, "Eye X"),
		column("eye_y", TypePoint, "Eye Y"),
		column("flukeWidth", TypeAutoLength, "Fluke width"),
	)

	Augment(tbl)

	want := []string{
		"image", "headLength", "eye_x", "eye_y", "flukeWidth",
		"headLength_x_start", "headLength_y_start", "headLength_x_end", "headLength_y_end",
		"flukeWidth_x_start", "flukeWidth_y_start", "flukeWidth_x_end", "flukeWidth_y_end",
		"headLength_reviewed",
		"eye_reviewed",
	}
	if diff := cmp.Diff(want, tbl.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
