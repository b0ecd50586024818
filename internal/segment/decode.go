package segment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError reports a source that could not be decoded into segments.
type ValidationError struct {
	Source string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("file %s is not valid (%s)", e.Source, e.Reason)
}

// raw segment as found in an input file; grouping fields are optional
type Raw struct {
	Segment
	GroupID         *int
	PositionInGroup *int
	GroupSize       *int
}

// named blob of already-read input
type Source struct {
	Name string
	Data []byte
}

type rawWire struct {
	Start           *float64 `json:"start"`
	End             *float64 `json:"end"`
	Text            *string  `json:"text"`
	GroupID         *int     `json:"groupId"`
	PositionInGroup *int     `json:"positionInGroup"`
	GroupSize       *int     `json:"groupSize"`
}

// Decode parses a JSON array of segment objects. Any failure is returned as a
// *ValidationError naming the source.
func Decode(name string, data []byte) ([]Raw, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &ValidationError{Source: name, Reason: err.Error()}
	}
	// null decodes without error into a nil slice
	if items == nil {
		return nil, &ValidationError{Source: name, Reason: "not an array"}
	}

	out := make([]Raw, 0, len(items))
	for i, item := range items {
		var w rawWire
		if err := json.Unmarshal(item, &w); err != nil {
			return nil, &ValidationError{
				Source: name,
				Reason: fmt.Sprintf("segment %d: %v", i, err),
			}
		}
		if reason := w.missing(); reason != "" {
			return nil, &ValidationError{
				Source: name,
				Reason: fmt.Sprintf("segment %d: %s", i, reason),
			}
		}
		if *w.End < *w.Start {
			return nil, &ValidationError{
				Source: name,
				Reason: fmt.Sprintf("segment %d: end %g before start %g", i, *w.End, *w.Start),
			}
		}
		out = append(out, Raw{
			Segment:         Segment{Start: *w.Start, End: *w.End, Text: *w.Text},
			GroupID:         w.GroupID,
			PositionInGroup: w.PositionInGroup,
			GroupSize:       w.GroupSize,
		})
	}
	return out, nil
}

func (w rawWire) missing() string {
	var fields []string
	if w.Start == nil {
		fields = append(fields, "start")
	}
	if w.End == nil {
		fields = append(fields, "end")
	}
	if w.Text == nil {
		fields = append(fields, "text")
	}
	if len(fields) == 0 {
		return ""
	}
	return "missing " + strings.Join(fields, ", ")
}

// ReadSource reads a JSON segment file from disk. Files without a .json
// extension are rejected before reading.
func ReadSource(path string) (Source, error) {
	name := filepath.Base(path)
	if strings.ToLower(filepath.Ext(path)) != ".json" {
		return Source{}, &ValidationError{Source: name, Reason: "not json"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &ValidationError{Source: name, Reason: err.Error()}
	}
	return Source{Name: name, Data: data}, nil
}

// Import decodes every source independently and normalizes the valid ones
// together with prev. Failures are collected in source order; they never
// prevent the remaining sources from loading.
func Import(prev List, sources []Source) (List, []error) {
	var (
		batches [][]Raw
		errs    []error
	)
	for _, src := range sources {
		raws, err := Decode(src.Name, src.Data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		batches = append(batches, raws)
	}
	return Normalize(prev, batches...), errs
}
