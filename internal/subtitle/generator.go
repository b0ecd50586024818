package subtitle

import (
	"strings"
	"unicode/utf8"

	"github.com/mgpai22/aab/internal/grouping"
	"github.com/mgpai22/aab/internal/segment"
)

// DefaultGenerator implements the Generator interface
type DefaultGenerator struct {
	Separator       string  // inserted between member texts
	MaxCharsPerLine int     // 0 keeps the text as is
	JumpTolerance   float64 // seconds
}

func NewDefaultGenerator() *DefaultGenerator {
	return &DefaultGenerator{}
}

// converts a grouped segment list to one entry per group
func (g *DefaultGenerator) Generate(segments segment.List) (*Subtitle, error) {
	timeline := grouping.Timeline(segments, g.JumpTolerance)

	entries := make([]Entry, 0, len(timeline))
	for _, item := range timeline {
		entries = append(entries, Entry{
			Index:     item.ID + 1,
			StartTime: Seconds(item.Start),
			EndTime:   Seconds(item.End),
			Text:      g.formatText(item.Join(g.Separator)),
			Jump:      item.Jump,
		})
	}

	return &Subtitle{
		Entries:  entries,
		Format:   string(FormatSRT),
		Segments: segments,
	}, nil
}

// formatText wraps text onto two lines when it exceeds MaxCharsPerLine
func (g *DefaultGenerator) formatText(text string) string {
	if g.MaxCharsPerLine <= 0 {
		return text
	}
	runeCount := utf8.RuneCountInString(text)

	// if text fits on one line, return as is
	if runeCount <= g.MaxCharsPerLine {
		return text
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	// find the best split point (closest to middle)
	middle := runeCount / 2
	bestSplit := 0
	bestDiff := runeCount

	currentLen := 0
	for i, word := range words[:len(words)-1] {
		currentLen += utf8.RuneCountInString(word)
		if i > 0 {
			currentLen++ // space
		}

		diff := abs(currentLen - middle)
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i + 1
		}
	}

	if bestSplit > 0 && bestSplit < len(words) {
		line1 := strings.Join(words[:bestSplit], " ")
		line2 := strings.Join(words[bestSplit:], " ")
		return line1 + "\n" + line2
	}

	return text
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
