package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectGroups(t *testing.T) {
	tests := []struct {
		name     string
		selected []int
		click    int
		want     []int
	}{
		{name: "first click", selected: nil, click: 3, want: []int{3}},
		{name: "extend down", selected: []int{3}, click: 6, want: []int{3, 4, 5, 6}},
		{name: "extend up", selected: []int{3, 4}, click: 1, want: []int{1, 2, 3, 4}},
		{name: "trim bottom", selected: []int{1, 2, 3, 4}, click: 3, want: []int{1, 2}},
		{name: "trim top", selected: []int{1, 2, 3, 4}, click: 2, want: []int{3, 4}},
		{name: "deselect only", selected: []int{5}, click: 5, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectGroups(tt.selected, tt.click)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectMembers(t *testing.T) {
	members := []int{3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		selected []int
		click    int
		want     []int
	}{
		{name: "anchor top", selected: nil, click: 4, want: []int{3, 4}},
		{name: "anchor bottom", selected: nil, click: 6, want: []int{6, 7}},
		{name: "middle anchors top", selected: nil, click: 5, want: []int{3, 4, 5}},
		{name: "extend", selected: []int{3, 4}, click: 6, want: []int{3, 4, 5, 6}},
		{name: "shrink keeps top anchor", selected: []int{3, 4, 5, 6}, click: 5, want: []int{3, 4}},
		{name: "shrink keeps bottom anchor", selected: []int{5, 6, 7}, click: 6, want: []int{7}},
		{name: "near top of bottom anchored", selected: []int{4, 5, 6, 7}, click: 5, want: []int{6, 7}},
		{name: "unknown member", selected: nil, click: 9, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectMembers(tt.selected, tt.click, members)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggleAllMembers(t *testing.T) {
	members := []int{2, 3, 4}
	assert.Equal(t, members, ToggleAllMembers([]int{3}, members))
	assert.Empty(t, ToggleAllMembers(members, members))
}
