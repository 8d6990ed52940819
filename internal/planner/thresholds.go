package planner

// Thresholds holds the empirically chosen cut-offs of the ranking pipeline.
// Scores are on the 0-100 scale.
type Thresholds struct {
	// StrongMatch is the keyword score at or above which a destination is
	// finalized without consulting the fallback scorer.
	StrongMatch int
	// FallbackAccept is the minimum fallback score for a weak destination to
	// be kept.
	FallbackAccept int
	// FinalFloor drops merged candidates scoring below it, and is the score
	// floor applied on the empty-result fallback path.
	FinalFloor int

	// StrongLimit caps how many strong destinations are finalized.
	StrongLimit int
	// WeakLimit caps how many weak destinations are sent to the fallback scorer.
	WeakLimit int
	// BatchSize caps the number of destinations per fallback scorer call.
	BatchSize int
	// DefaultFallbackScore replaces any score the fallback scorer fails to
	// return.
	DefaultFallbackScore int
}

// DefaultThresholds returns the thresholds the planner ships with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongMatch:          25,
		FallbackAccept:       35,
		FinalFloor:           15,
		StrongLimit:          60,
		WeakLimit:            40,
		BatchSize:            15,
		DefaultFallbackScore: 40,
	}
}

// withDefaults fills zero fields from DefaultThresholds.
func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.StrongMatch <= 0 {
		t.StrongMatch = d.StrongMatch
	}
	if t.FallbackAccept <= 0 {
		t.FallbackAccept = d.FallbackAccept
	}
	if t.FinalFloor <= 0 {
		t.FinalFloor = d.FinalFloor
	}
	if t.StrongLimit <= 0 {
		t.StrongLimit = d.StrongLimit
	}
	if t.WeakLimit <= 0 {
		t.WeakLimit = d.WeakLimit
	}
	if t.BatchSize <= 0 {
		t.BatchSize = d.BatchSize
	}
	if t.DefaultFallbackScore <= 0 {
		t.DefaultFallbackScore = d.DefaultFallbackScore
	}
	return t
}
