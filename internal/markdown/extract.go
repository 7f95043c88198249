package markdown

import "regexp"

// linkPattern matches image syntax first, then plain links, in one scan.
//
// Known limitations: escaped brackets, nested parentheses in targets,
// reference-style links and angle-bracket destinations are not understood.
// A title written after the target is folded into the path.
var linkPattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)|\[([^\]]*)\]\(([^)]*)\)`)

// Extract returns every link in content in document order.
func Extract(content string) []Link {
	return ExtractWithOptions(content, Options{})
}

// ExtractWithOptions returns the links in content, honoring opts.
func ExtractWithOptions(content string, opts Options) []Link {
	matches := linkPattern.FindAllStringSubmatchIndex(content, -1)
	links := make([]Link, 0, len(matches))

	var code []Range
	if opts.SkipCode && len(matches) > 0 {
		code = CodeRanges([]byte(content))
	}

	for _, m := range matches {
		start, end := m[0], m[1]
		if len(code) > 0 && inRanges(code, start) {
			continue
		}

		// Group 2 only participates when the image alternative matched.
		if m[4] >= 0 {
			links = append(links, Link{
				Kind:    LinkKindImage,
				Label:   content[m[2]:m[3]],
				Path:    content[m[4]:m[5]],
				RawSpan: content[start:end],
				Start:   start,
				End:     end,
			})
			continue
		}

		links = append(links, Link{
			Kind:    LinkKindLink,
			Label:   content[m[6]:m[7]],
			Path:    content[m[8]:m[9]],
			RawSpan: content[start:end],
			Start:   start,
			End:     end,
		})
	}

	return links
}

// PathStart returns the byte offset of the link's target within the scanned text.
func (l Link) PathStart() int {
	return l.End - 1 - len(l.Path)
}
