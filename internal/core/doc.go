// Package core provides the augmentation logic for the measurement schema
// file (conventionally CSV-Columns.csv).
//
// Each row of the schema names one measurement column and its metadata:
// description, units, measurement type and the export/editable/is_metadata
// flags. The package contains all domain logic independent of the process
// wrapper, so it can be used by the command, other tools, or tests without
// modification.
//
// # Pipeline
//
// A run is a straight line with no retained state between runs:
//
//  1. [Load] parses the file into a [Table], an ordered mapping keyed by
//     column_name. The header is kept verbatim for output.
//  2. [Augment] applies two derivation rules over the columns present at the
//     start of the pass:
//     [ExpandCoordinates] adds _x_start/_y_start/_x_end/_y_end "auto point"
//     columns for every "length" or "auto length" column, and
//     [ReviewFlags] adds one boolean <base>_reviewed column for every
//     "point" or "length" column, sharing one flag per *_x/*_y point pair.
//  3. [Persist] renames the original to <path>.<epoch>.bak and writes the
//     augmented table in its place.
//
// Derived rows never overwrite an existing column, which makes the pass
// idempotent.
//
// # Error Handling
//
// Every returned error wraps one kind: [ErrInputNotFound],
// [ErrMalformedInput], [ErrBackupCollision] or [ErrWriteFailure].
// [MapError] turns them into user-facing messages with a support code:
//
//   - FILE001-FILE002: File errors (missing, not a CSV table)
//   - VAL003-VAL004: Validation errors (empty column_name, missing header field)
//   - BAK001, WRT001: Output errors (backup collision, write failure)
package core
