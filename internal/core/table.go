package core

// Table is an ordered mapping from column name to ColumnRecord.
//
// Records live in a slice in output order and an index maps each name to its
// slot, giving constant-time lookups while preserving insertion order.
type Table struct {
	header  []string // header cells exactly as read
	fields  []string // header keys, parallel to header
	crlf    bool     // write rows terminated by \r\n
	records []ColumnRecord
	index   map[string]int

	duplicates []string
}

// NewTable creates an empty table that will be written with the given header.
func NewTable(header []string) *Table {
	t := &Table{
		header: append([]string(nil), header...),
		fields: make([]string, len(header)),
		index:  make(map[string]int),
	}
	for i, h := range header {
		t.fields[i] = headerKey(h)
	}
	return t
}

// Header returns a copy of the header row as it will be written.
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// UseCRLF reports whether rows are written with \r\n terminators.
func (t *Table) UseCRLF() bool { return t.crlf }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Get returns the record for name.
func (t *Table) Get(name string) (ColumnRecord, bool) {
	i, ok := t.index[name]
	if !ok {
		return ColumnRecord{}, false
	}
	return t.records[i], true
}

// Names returns a snapshot of the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.records))
	for i, r := range t.records {
		names[i] = r.Name
	}
	return names
}

// Records returns the records in table order.
func (t *Table) Records() []ColumnRecord {
	return append([]ColumnRecord(nil), t.records...)
}

// Add appends rec unless a column with the same name already exists.
// Existing records are never overwritten; the return value reports whether
// rec was inserted.
func (t *Table) Add(rec ColumnRecord) bool {
	if t.Has(rec.Name) {
		return false
	}
	t.index[rec.Name] = len(t.records)
	t.records = append(t.records, rec)
	return true
}

// Put inserts rec, or replaces the existing record of the same name in place
// so that its position is kept. Returns true if a record was replaced.
func (t *Table) Put(rec ColumnRecord) bool {
	if i, ok := t.index[rec.Name]; ok {
		t.records[i] = rec
		return true
	}
	t.Add(rec)
	return false
}

// Duplicates lists column names that appeared more than once on read.
func (t *Table) Duplicates() []string {
	return append([]string(nil), t.duplicates...)
}
