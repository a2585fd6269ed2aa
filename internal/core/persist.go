package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
)

// BackupPath returns the name the original file is moved to before writing:
// "<path>.<unix-epoch-seconds>.bak".
func BackupPath(path string, now time.Time) string {
	return fmt.Sprintf("%s.%d.bak", path, now.Unix())
}

// WriteTable writes the header followed by every record in table order.
// A field is quoted only when it holds a comma, a quote or a line break, so
// cells with surrounding spaces are written back as they were read.
func WriteTable(w io.Writer, t *Table) error {
	eol := "\n"
	if t.crlf {
		eol = "\r\n"
	}

	bw := bufio.NewWriter(w)
	writeRow(bw, t.header, eol)
	for _, rec := range t.records {
		writeRow(bw, rec.Values(t.fields), eol)
	}
	return bw.Flush()
}

// writeRow relies on bufio.Writer keeping the first error for Flush.
func writeRow(bw *bufio.Writer, row []string, eol string) {
	for i, field := range row {
		if i > 0 {
			bw.WriteByte(',')
		}
		if strings.ContainsAny(field, ",\"\r\n") {
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
			bw.WriteByte('"')
			continue
		}
		bw.WriteString(field)
	}
	bw.WriteString(eol)
}

// Persist moves the file at path to its backup name and writes t in its place.
// It returns the backup path.
//
// The rename happens before the new file is opened, so a failure while
// writing leaves no file at path; the backup keeps the pre-run contents.
// A backup of the same name is replaced where the host's rename allows it
// (last run within a second wins).
func Persist(path string, t *Table, now time.Time) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("%w: stat %s: %w", ErrWriteFailure, path, err)
	}

	backup := BackupPath(path, now)
	if err := os.Rename(path, backup); err != nil {
		if _, statErr := os.Stat(backup); statErr == nil {
			return "", fmt.Errorf("%w: %s: %w", ErrBackupCollision, backup, err)
		}
		return "", fmt.Errorf("%w: backup %s: %w", ErrWriteFailure, path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return backup, fmt.Errorf("%w: create %s: %w", ErrWriteFailure, path, err)
	}

	if err := WriteTable(f, t); err != nil {
		f.Close()
		return backup, fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return backup, fmt.Errorf("%w: close %s: %w", ErrWriteFailure, path, err)
	}

	return backup, nil
}
