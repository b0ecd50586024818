package segment

// represents single timestamped cue before grouping
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// segment plus the metadata of the group it belongs to
type Grouped struct {
	Segment
	GroupID         int `json:"groupId"`
	PositionInGroup int `json:"positionInGroup"`
	GroupSize       int `json:"groupSize"`
	OriginalIndex   int `json:"originalIndex"`
}

// List is the working set ordered by ascending OriginalIndex.
type List []Grouped

// reports whether the segment opens its group
func (g Grouped) IsGroupStart() bool {
	return g.PositionInGroup == 0
}

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the list position of the segment with the given
// originalIndex, or -1.
func (l List) IndexOf(originalIndex int) int {
	for i := range l {
		if l[i].OriginalIndex == originalIndex {
			return i
		}
	}
	return -1
}

// GroupCount returns the number of groups, derived from the last element.
func (l List) GroupCount() int {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].GroupID + 1
}

// Members returns the originalIndex values of every segment in group id.
func (l List) Members(groupID int) []int {
	var out []int
	for _, g := range l {
		if g.GroupID == groupID {
			out = append(out, g.OriginalIndex)
		}
	}
	return out
}
