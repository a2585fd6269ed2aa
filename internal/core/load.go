package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load reads the schema file at path into a Table keyed by column_name.
//
// Returns an error wrapping ErrInputNotFound if the file does not exist, and
// ErrMalformedInput if it cannot be read or parsed or lacks required fields.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: open %s: %w", ErrMalformedInput, path, err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadTable parses a schema table from r. The first record is the header;
// its cells are kept verbatim for output. A later row with an already seen
// column_name replaces the earlier record in the earlier position.
func ReadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(NewBOMSkippingReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrMalformedInput, err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true // hand-edited descriptions carry bare quotes

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedInput, err)
	}

	idx, err := ValidateHeaders(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	t := NewTable(header)
	t.crlf = usesCRLF(data)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}

		line, _ := cr.FieldPos(0)
		if err := ValidateRow(row, idx, line); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}

		rec := recordFromRow(row, t.fields)
		if t.Put(rec) {
			t.duplicates = append(t.duplicates, rec.Name)
		}
	}

	return t, nil
}

// recordFromRow maps a validated row onto a ColumnRecord using the header keys.
func recordFromRow(row []string, fields []string) ColumnRecord {
	var rec ColumnRecord
	for i, f := range fields {
		v := ""
		if i < len(row) {
			v = row[i]
		}
		rec.Set(f, v)
	}
	return rec
}
