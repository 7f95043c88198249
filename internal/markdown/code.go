package markdown

import (
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// CodeRanges parses body as CommonMark and returns the byte ranges covered by
// fenced code blocks, indented code blocks and inline code spans.
//
// Ranges are sorted by Start. Fence delimiter lines are not included; only the
// code content is.
func CodeRanges(body []byte) []Range {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	ranges := make([]Range, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.FencedCodeBlock, *gmast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				ranges = append(ranges, Range{Start: seg.Start, End: seg.Stop})
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*gmast.Text); ok {
					ranges = append(ranges, Range{Start: t.Segment.Start, End: t.Segment.Stop})
				}
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

func inRanges(ranges []Range, offset int) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].End > offset })
	return i < len(ranges) && ranges[i].Start <= offset
}
