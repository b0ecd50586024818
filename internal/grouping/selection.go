package grouping

import "slices"

// Selection helpers turn a click on an id into the next selection. The
// selection is always a contiguous ascending run and is owned by the caller.

// SelectGroups toggles id in a selection of group ids. Clicking inside the
// run trims it toward the nearer end, clicking outside extends the run.
func SelectGroups(selected []int, id int) []int {
	if pos := slices.Index(selected, id); pos >= 0 {
		if id-selected[0] > selected[len(selected)-1]-id {
			return slices.Clone(selected[:pos])
		}
		return slices.Clone(selected[pos+1:])
	}
	if len(selected) > 0 {
		return span(min(id, selected[0]), max(id, selected[len(selected)-1]))
	}
	return []int{id}
}

// SelectMembers toggles originalIndex idx among the members of one group.
// A fresh selection is anchored to the nearer edge of the group, and
// trimming keeps whichever group edge the selection is anchored to, so the
// result can always be split off as a prefix or suffix.
func SelectMembers(selected []int, idx int, members []int) []int {
	if len(members) == 0 {
		return slices.Clone(selected)
	}
	first, last := members[0], members[len(members)-1]

	if pos := slices.Index(selected, idx); pos >= 0 {
		lo, hi := selected[0], selected[len(selected)-1]
		if idx-lo > hi-idx {
			if lo > first {
				return slices.Clone(selected[pos+1:])
			}
			return slices.Clone(selected[:pos])
		}
		if hi < last {
			return slices.Clone(selected[:pos])
		}
		return slices.Clone(selected[pos+1:])
	}

	if len(selected) > 0 {
		return span(min(idx, selected[0]), max(idx, selected[len(selected)-1]))
	}

	pos := slices.Index(members, idx)
	if pos < 0 {
		return nil
	}
	if idx-first > last-idx {
		return slices.Clone(members[pos:])
	}
	return slices.Clone(members[:pos+1])
}

// ToggleAllMembers selects the whole group, or clears the selection when it
// already covers the group.
func ToggleAllMembers(selected []int, members []int) []int {
	if len(selected) < len(members) {
		return slices.Clone(members)
	}
	return nil
}

func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}
