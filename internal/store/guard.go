package store

import "context"

// Phase identifies which mutating phase a statement belongs to. Each phase
// has exactly one allow-listed error kind; everything else is fatal.
type Phase int

const (
	PhaseDrop Phase = iota
	PhaseCreate
	PhaseInsert
)

var allowedKind = map[Phase]Kind{
	PhaseDrop:   KindObjectAbsent,
	PhaseCreate: KindObjectExists,
	PhaseInsert: KindUniqueViolation,
}

// Guard wraps every mutating statement of a run. On an allow-listed failure
// the statement is treated as already done and reported as skipped; any other
// failure propagates unchanged so the caller aborts.
type Guard struct {
	store *Store
}

func NewGuard(s *Store) *Guard {
	return &Guard{store: s}
}

// Exec runs one mutating statement. skipped is true when the failure was
// allow-listed for the phase and therefore swallowed.
func (g *Guard) Exec(ctx context.Context, phase Phase, query string, args ...interface{}) (skipped bool, err error) {
	err = g.store.Exec(ctx, query, args...)
	if err == nil {
		return false, nil
	}
	if Classify(err) == allowedKind[phase] {
		return true, nil
	}
	return false, err
}
