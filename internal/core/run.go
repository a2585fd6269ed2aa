package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/JonMunkholm/csvcolumns/internal/logging"
)

// Options configures a single augmentation run.
type Options struct {
	Path   string           // schema file to augment
	DryRun bool             // write to Out instead of replacing Path
	Out    io.Writer        // dry-run destination; os.Stdout if nil
	Now    func() time.Time // clock for the backup name; time.Now if nil
}

// Result describes a completed run.
type Result struct {
	Path         string
	BackupPath   string // empty on dry run
	OriginalRows int
	TotalRows    int
	Report       Report
	Duration     time.Duration
}

// Run loads the schema at opts.Path, augments it and persists it.
//
// The pipeline is straight-line: any error aborts the run and is returned
// unchanged so that callers can inspect its kind with errors.Is.
func Run(ctx context.Context, opts Options) (Result, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	start := now()
	log := logging.WithFields(ctx, "path", opts.Path)

	t, err := Load(opts.Path)
	if err != nil {
		return Result{}, err
	}
	log.Debug("schema loaded", "rows", t.Len(), "fields", len(t.header), "crlf", t.crlf)

	for _, name := range t.Duplicates() {
		log.Warn("duplicate column_name, later row kept", "column", name)
	}
	for _, rec := range t.Records() {
		for _, w := range FlagWarnings(rec) {
			log.Warn("flag not recognised as boolean", "column", rec.Name, "field", w.Field, "value", w.Value)
		}
	}

	res := Result{Path: opts.Path, OriginalRows: t.Len()}
	res.Report = Augment(t)
	res.TotalRows = t.Len()

	for _, rr := range []RuleResult{res.Report.Coordinates, res.Report.Reviews} {
		log.Debug("rule applied", "rule", rr.Rule, "added", len(rr.Added), "skipped", len(rr.Skipped))
	}

	if opts.DryRun {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		if err := WriteTable(out, t); err != nil {
			return res, fmt.Errorf("%w: dry run: %w", ErrWriteFailure, err)
		}
	} else {
		backup, err := Persist(opts.Path, t, start)
		res.BackupPath = backup
		if err != nil {
			return res, err
		}
		log.Debug("backup written", "backup", backup)
	}

	res.Duration = now().Sub(start)
	return res, nil
}
