package subtitle

import (
	"io"
	"math"
	"time"

	"github.com/mgpai22/aab/internal/segment"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
	Jump      bool
}

// represents complete subtitle track
type Subtitle struct {
	Entries  []Entry
	Format   string
	Segments segment.List // grouped source, kept for the JSON format
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatASS  Format = "ass"
	FormatJSON Format = "json"
)

// interface for subtitle generation
type Generator interface {
	Generate(segments segment.List) (*Subtitle, error)
}

// interface for writing subtitles
type Writer interface {
	Encode(w io.Writer, subtitle *Subtitle) error
	Write(subtitle *Subtitle, path string) error
}

// largest millisecond count a time.Duration can hold
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

// Seconds converts a fractional second timestamp to a duration rounded half
// up to the millisecond. Negative values clamp to zero and values past the
// range of time.Duration clamp to its maximum whole millisecond.
func Seconds(s float64) time.Duration {
	ms := math.Floor(s*1000 + 0.5)
	if ms < 0 || math.IsNaN(ms) {
		return 0
	}
	if ms >= float64(maxMillis) {
		return time.Duration(maxMillis) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
