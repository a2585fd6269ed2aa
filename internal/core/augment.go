package core

// Report summarises one augmentation pass.
type Report struct {
	Coordinates RuleResult
	Reviews     RuleResult
}

// Added returns every derived column in the order it was appended.
func (r Report) Added() []string {
	out := make([]string, 0, len(r.Coordinates.Added)+len(r.Reviews.Added))
	out = append(out, r.Coordinates.Added...)
	return append(out, r.Reviews.Added...)
}

// Skipped returns every derived name that already existed.
func (r Report) Skipped() []string {
	out := make([]string, 0, len(r.Coordinates.Skipped)+len(r.Reviews.Skipped))
	out = append(out, r.Coordinates.Skipped...)
	return append(out, r.Reviews.Skipped...)
}

// Augment applies the coordinate expansion and then the review-flag rule.
//
// Both rules consider only the columns present when Augment starts, so the
// coordinate columns appended by the first rule are never candidates for the
// second. Augment is idempotent: running it on its own output adds nothing.
func Augment(t *Table) Report {
	live := t.Names()

	return Report{
		Coordinates: ExpandCoordinates(t, live),
		Reviews:     ReviewFlags(t, live),
	}
}
