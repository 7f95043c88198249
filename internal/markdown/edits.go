package markdown

import (
	"errors"
	"fmt"
	"sort"
)

// Edit is a byte-range replacement of source[Start:End].
type Edit struct {
	Start       int
	End         int
	Replacement []byte
}

// ErrOverlappingEdits is returned when two edits touch the same bytes.
var ErrOverlappingEdits = errors.New("invalid edits: overlapping ranges")

// ApplyEdits applies non-overlapping edits to source and returns the result.
//
// Offsets always refer to the original source. Edits are applied back to front
// so earlier offsets stay valid. source itself is not modified.
func ApplyEdits(source []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return source, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End > sorted[j].End
		}
		return sorted[i].Start > sorted[j].Start
	})

	for i, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(source) {
			return nil, fmt.Errorf("invalid edit[%d]: range %d:%d out of bounds", i, e.Start, e.End)
		}
		if i > 0 && e.End > sorted[i-1].Start {
			return nil, ErrOverlappingEdits
		}
	}

	out := append([]byte(nil), source...)
	for _, e := range sorted {
		next := make([]byte, 0, len(out)-(e.End-e.Start)+len(e.Replacement))
		next = append(next, out[:e.Start]...)
		next = append(next, e.Replacement...)
		next = append(next, out[e.End:]...)
		out = next
	}

	return out, nil
}

// RewritePaths replaces the target of each link whose Path has an entry in
// mapping. Links must come from scanning content. It returns the new content
// and the number of targets rewritten.
func RewritePaths(content string, links []Link, mapping map[string]string) (string, int, error) {
	edits := make([]Edit, 0)
	for _, l := range links {
		replacement, ok := mapping[l.Path]
		if !ok || replacement == l.Path {
			continue
		}
		start := l.PathStart()
		edits = append(edits, Edit{Start: start, End: start + len(l.Path), Replacement: []byte(replacement)})
	}
	if len(edits) == 0 {
		return content, 0, nil
	}

	out, err := ApplyEdits([]byte(content), edits)
	if err != nil {
		return "", 0, err
	}
	return string(out), len(edits), nil
}
