package grouping

import (
	"fmt"

	"github.com/mgpai22/aab/internal/logging"
	"github.com/mgpai22/aab/internal/segment"
)

// Engine applies structural edits to a grouped segment list. Every operation
// returns a fresh list; the input is never modified.
type Engine struct {
	// CheckInvariants runs segment.Check on the input before each operation.
	CheckInvariants bool

	logger *logging.Logger
}

func NewEngine(logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Engine{
		CheckInvariants: true,
		logger:          logger,
	}
}

// Merge collapses the groups named by groupIDs. Each contiguous run of
// targeted segments becomes one group and the following groups are
// renumbered so ids stay dense. Ids that do not occur in l are ignored.
func (e *Engine) Merge(l segment.List, groupIDs []int) (segment.List, error) {
	if err := e.precheck("merge", l); err != nil {
		return l, err
	}

	targets := toSet(groupIDs)
	matched := 0
	for _, s := range l {
		if targets[s.GroupID] {
			matched++
		}
	}
	if matched == 0 {
		return l, &EmptySelectionError{Op: "merge"}
	}

	out := relabel(l, func(i int) bool {
		prev, cur := l[i-1], l[i]
		if targets[prev.GroupID] && targets[cur.GroupID] {
			return true
		}
		return prev.GroupID == cur.GroupID
	})

	e.logger.Debugw("merged groups",
		"groups", len(targets),
		"segments", matched,
		"before", l.GroupCount(),
		"after", out.GroupCount(),
	)
	return out, nil
}

// Unmerge splits the segments identified by originalIndexes into singleton
// groups. What remains of a partially split group is re-packed; if an
// interior member is removed the members on either side form separate groups.
func (e *Engine) Unmerge(l segment.List, originalIndexes []int) (segment.List, error) {
	if err := e.precheck("unmerge", l); err != nil {
		return l, err
	}
	return e.unmerge(l, toSet(originalIndexes))
}

// UnmergeGroup is Unmerge restricted to members of a single group. It fails
// with ErrNotInGroup when an index belongs elsewhere.
func (e *Engine) UnmergeGroup(l segment.List, groupID int, originalIndexes []int) (segment.List, error) {
	if err := e.precheck("unmerge", l); err != nil {
		return l, err
	}
	if len(originalIndexes) == 0 {
		return l, &EmptySelectionError{Op: "unmerge"}
	}

	members := toSet(l.Members(groupID))
	for _, idx := range originalIndexes {
		if !members[idx] {
			return l, fmt.Errorf("unmerge group %d: segment %d: %w", groupID, idx, ErrNotInGroup)
		}
	}
	return e.unmerge(l, toSet(originalIndexes))
}

func (e *Engine) unmerge(l segment.List, targets map[int]bool) (segment.List, error) {
	matched := 0
	for _, s := range l {
		if targets[s.OriginalIndex] {
			matched++
		}
	}
	if matched == 0 {
		return l, &EmptySelectionError{Op: "unmerge"}
	}

	out := relabel(l, func(i int) bool {
		prev, cur := l[i-1], l[i]
		if targets[prev.OriginalIndex] || targets[cur.OriginalIndex] {
			return false
		}
		return prev.GroupID == cur.GroupID
	})

	e.logger.Debugw("unmerged segments",
		"segments", matched,
		"before", l.GroupCount(),
		"after", out.GroupCount(),
	)
	return out, nil
}

// EditText replaces the text of one segment. Grouping metadata is untouched.
func (e *Engine) EditText(l segment.List, originalIndex int, text string) (segment.List, error) {
	if err := e.precheck("edit", l); err != nil {
		return l, err
	}

	pos := l.IndexOf(originalIndex)
	if pos < 0 {
		return l, fmt.Errorf("edit segment %d: %w", originalIndex, ErrSegmentNotFound)
	}

	out := l.Clone()
	out[pos].Text = text
	e.logger.Debugw("edited segment", "segment", originalIndex, "group", out[pos].GroupID)
	return out, nil
}

func (e *Engine) precheck(op string, l segment.List) error {
	if !e.CheckInvariants {
		return nil
	}
	if err := segment.Check(l); err != nil {
		e.logger.Warnw("refusing operation on inconsistent list", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// relabel rebuilds ids, positions and sizes on a copy of src in one forward
// pass. continues(i) reports whether src[i] stays in the group of src[i-1].
func relabel(src segment.List, continues func(i int) bool) segment.List {
	out := src.Clone()
	groupID, runStart := 0, 0
	for i := range out {
		if i > 0 && !continues(i) {
			closeRun(out[runStart:i])
			groupID++
			runStart = i
		}
		out[i].GroupID = groupID
		out[i].PositionInGroup = i - runStart
	}
	closeRun(out[runStart:])
	return out
}

func closeRun(run segment.List) {
	for i := range run {
		run[i].GroupSize = len(run)
	}
}

func toSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
