package segment

import "fmt"

// Invariant names one of the grouping consistency rules.
type Invariant string

const (
	InvariantGroupIDs      Invariant = "dense group ids"
	InvariantPositions     Invariant = "positions and sizes"
	InvariantContiguous    Invariant = "contiguous groups"
	InvariantOriginalIndex Invariant = "increasing original index"
)

// InconsistentStateError reports the first list position that breaks an
// invariant.
type InconsistentStateError struct {
	Index     int
	Invariant Invariant
	Detail    string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent segment list at %d (%s): %s", e.Index, e.Invariant, e.Detail)
}

// Check verifies every grouping invariant in a single pass.
func Check(l List) error {
	seen := make(map[int]bool)
	runStart := 0
	for i, g := range l {
		fail := func(inv Invariant, format string, args ...any) error {
			return &InconsistentStateError{Index: i, Invariant: inv, Detail: fmt.Sprintf(format, args...)}
		}

		if i == 0 {
			if g.GroupID != 0 {
				return fail(InvariantGroupIDs, "first group id is %d", g.GroupID)
			}
		} else {
			prev := l[i-1]
			if g.OriginalIndex <= prev.OriginalIndex {
				return fail(InvariantOriginalIndex, "original index %d after %d", g.OriginalIndex, prev.OriginalIndex)
			}
			switch g.GroupID {
			case prev.GroupID:
			case prev.GroupID + 1:
				runStart = i
			default:
				if seen[g.GroupID] {
					return fail(InvariantContiguous, "group %d appears twice", g.GroupID)
				}
				return fail(InvariantGroupIDs, "group id %d follows %d", g.GroupID, prev.GroupID)
			}
		}
		seen[g.GroupID] = true

		if want := i - runStart; g.PositionInGroup != want {
			return fail(InvariantPositions, "position %d, expected %d", g.PositionInGroup, want)
		}
		runEnd := runStart + g.GroupSize
		if g.GroupSize < 1 || runEnd > len(l) {
			return fail(InvariantPositions, "group size %d overruns list of %d", g.GroupSize, len(l))
		}
		if i >= runEnd {
			return fail(InvariantPositions, "group %d is longer than its size %d", g.GroupID, g.GroupSize)
		}
		if g.GroupSize != l[runStart].GroupSize {
			return fail(InvariantPositions, "group size %d, group declares %d", g.GroupSize, l[runStart].GroupSize)
		}
		last := i == len(l)-1 || l[i+1].GroupID != g.GroupID
		if last && i != runEnd-1 {
			return fail(InvariantPositions, "group %d ends at %d, size says %d", g.GroupID, i, runEnd-1)
		}
	}
	return nil
}
