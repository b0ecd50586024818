package segment

import "sort"

// Normalize merges prev with the raw batches, sorts everything by start time
// and rebuilds the grouping metadata from scratch.
//
// A segment stays in its predecessor's group only when both carry a source
// group id and the ids are equal. originalIndex is reassigned to the position
// in the sorted sequence and groupSize is set to the true run length.
func Normalize(prev List, batches ...[]Raw) List {
	total := len(prev)
	for _, b := range batches {
		total += len(b)
	}

	combined := make([]Raw, 0, total)
	for _, g := range prev {
		id := g.GroupID
		combined = append(combined, Raw{Segment: g.Segment, GroupID: &id})
	}
	for _, b := range batches {
		combined = append(combined, b...)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Start < combined[j].Start
	})

	out := make(List, len(combined))
	var prevSource *int
	groupID, position, runStart := 0, 0, 0
	for i, r := range combined {
		if i > 0 {
			if r.GroupID != nil && prevSource != nil && *r.GroupID == *prevSource {
				position++
			} else {
				closeRun(out[runStart:i])
				groupID++
				position = 0
				runStart = i
			}
		}
		prevSource = r.GroupID
		out[i] = Grouped{
			Segment:         r.Segment,
			GroupID:         groupID,
			PositionInGroup: position,
			OriginalIndex:   i,
		}
	}
	closeRun(out[runStart:])
	return out
}

// writes the run length onto every member of a finished group
func closeRun(run List) {
	for i := range run {
		run[i].GroupSize = len(run)
	}
}
