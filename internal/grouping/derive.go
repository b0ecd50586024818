package grouping

import (
	"math"
	"strings"

	"github.com/mgpai22/aab/internal/segment"
)

// Group is one merged cue reconstructed from the list metadata.
type Group struct {
	ID    int
	First int // list position of the first member
	Size  int
	Start float64
	End   float64
	Parts []string // member texts in order
}

// Text joins the member texts without a separator.
func (g Group) Text() string {
	return strings.Join(g.Parts, "")
}

// Join joins the member texts with sep.
func (g Group) Join(sep string) string {
	return strings.Join(g.Parts, sep)
}

// Members returns the slice of l covered by the group.
func (g Group) Members(l segment.List) segment.List {
	return l[g.First : g.First+g.Size]
}

// TimelineEntry is a group annotated with its distance from the previous one.
type TimelineEntry struct {
	Group
	Gap  float64 // start minus previous end, 0 for the first group
	Jump bool
}

// Groups walks l once and returns a group for every segment that opens one.
// A groupSize that would run past the end of l is clamped.
func Groups(l segment.List) []Group {
	var groups []Group
	for i, s := range l {
		if !s.IsGroupStart() {
			continue
		}
		size := s.GroupSize
		if size < 1 {
			size = 1
		}
		if i+size > len(l) {
			size = len(l) - i
		}

		members := l[i : i+size]
		parts := make([]string, len(members))
		for j, m := range members {
			parts[j] = m.Text
		}
		groups = append(groups, Group{
			ID:    s.GroupID,
			First: i,
			Size:  size,
			Start: members[0].Start,
			End:   members[len(members)-1].End,
			Parts: parts,
		})
	}
	return groups
}

// Timeline derives the groups and flags every start that is more than
// tolerance seconds away from the previous group's end.
func Timeline(l segment.List, tolerance float64) []TimelineEntry {
	groups := Groups(l)
	entries := make([]TimelineEntry, len(groups))
	for i, g := range groups {
		entries[i].Group = g
		if i == 0 {
			continue
		}
		gap := g.Start - groups[i-1].End
		entries[i].Gap = gap
		entries[i].Jump = math.Abs(gap) > tolerance
	}
	return entries
}
