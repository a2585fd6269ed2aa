package core

// Measurement types that drive the derivation rules. Other values are passed
// through untouched.
const (
	TypePoint      = "point"
	TypeLength     = "length"
	TypeAutoLength = "auto length"
	TypeAutoPoint  = "auto point"
	TypeBoolean    = "boolean"
)

// Header fields every schema file must carry.
const (
	FieldColumnName      = "column_name"
	FieldDescription     = "description"
	FieldUnits           = "units"
	FieldMeasurementType = "measurement_type"
	FieldExport          = "export"
	FieldEditable        = "editable"
	FieldIsMetadata      = "is_metadata"
)

// RequiredFields returns the header fields in their canonical order.
func RequiredFields() []string {
	return []string{
		FieldColumnName,
		FieldDescription,
		FieldUnits,
		FieldMeasurementType,
		FieldExport,
		FieldEditable,
		FieldIsMetadata,
	}
}

// ColumnRecord is one row of the schema: a named measurement column and its
// metadata. Flag fields keep the exact text found in the file so that
// untouched rows keep their cell text when written back.
type ColumnRecord struct {
	Name            string
	Description     string
	Units           string
	MeasurementType string
	Export          string
	Editable        string
	IsMetadata      string

	// Extra holds cells for header fields outside the required set.
	Extra map[string]string
}

// Get returns the value of a header field, or "" if the record has none.
func (r ColumnRecord) Get(field string) string {
	switch field {
	case FieldColumnName:
		return r.Name
	case FieldDescription:
		return r.Description
	case FieldUnits:
		return r.Units
	case FieldMeasurementType:
		return r.MeasurementType
	case FieldExport:
		return r.Export
	case FieldEditable:
		return r.Editable
	case FieldIsMetadata:
		return r.IsMetadata
	default:
		return r.Extra[field]
	}
}

// Set assigns the value of a header field.
func (r *ColumnRecord) Set(field, value string) {
	switch field {
	case FieldColumnName:
		r.Name = value
	case FieldDescription:
		r.Description = value
	case FieldUnits:
		r.Units = value
	case FieldMeasurementType:
		r.MeasurementType = value
	case FieldExport:
		r.Export = value
	case FieldEditable:
		r.Editable = value
	case FieldIsMetadata:
		r.IsMetadata = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[field] = value
	}
}

// Values returns the record's cells in the order of the given field keys.
// Fields the record does not carry are written as empty cells.
func (r ColumnRecord) Values(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = r.Get(f)
	}
	return out
}

// Exported reports whether the export flag is set.
func (r ColumnRecord) Exported() bool { return ParseFlag(r.Export).Bool }

// IsEditable reports whether the editable flag is set.
func (r ColumnRecord) IsEditable() bool { return ParseFlag(r.Editable).Bool }

// Metadata reports whether the is_metadata flag is set.
func (r ColumnRecord) Metadata() bool { return ParseFlag(r.IsMetadata).Bool }

// derivedRecord builds a synthesized column. Derived columns are never
// exported, editable or metadata.
func derivedRecord(name, description, units, measurementType string) ColumnRecord {
	off := FormatFlag(false)
	return ColumnRecord{
		Name:            name,
		Description:     description,
		Units:           units,
		MeasurementType: measurementType,
		Export:          off,
		Editable:        off,
		IsMetadata:      off,
	}
}
