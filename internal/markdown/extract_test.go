package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_InlineLink(t *testing.T) {
	links := Extract("See [API](api.md) for details.")
	require.Len(t, links, 1)
	assert.Equal(t, LinkKindLink, links[0].Kind)
	assert.Equal(t, "API", links[0].Label)
	assert.Equal(t, "api.md", links[0].Path)
	assert.Equal(t, "[API](api.md)", links[0].RawSpan)
	assert.Equal(t, 4, links[0].Start)
	assert.Equal(t, 17, links[0].End)
}

func TestExtract_ImageLink(t *testing.T) {
	links := Extract("![Diagram](diagram.png)")
	require.Len(t, links, 1)
	assert.Equal(t, LinkKindImage, links[0].Kind)
	assert.Equal(t, "Diagram", links[0].Label)
	assert.Equal(t, "diagram.png", links[0].Path)
	assert.Equal(t, "![Diagram](diagram.png)", links[0].RawSpan)
}

func TestExtract_DocumentOrderAndDuplicates(t *testing.T) {
	src := "[b](x.md) ![a](y.png) [c](x.md)"
	links := Extract(src)
	require.Len(t, links, 3)
	assert.Equal(t, []string{"x.md", "y.png", "x.md"}, []string{links[0].Path, links[1].Path, links[2].Path})
	assert.Equal(t, LinkKindImage, links[1].Kind)
	for _, l := range links {
		assert.Equal(t, l.RawSpan, src[l.Start:l.End])
	}
}

func TestExtract_EmptyLink(t *testing.T) {
	links := Extract("before []() after")
	require.Len(t, links, 1)
	assert.Equal(t, "", links[0].Label)
	assert.Equal(t, "", links[0].Path)
	assert.Equal(t, "[]()", links[0].RawSpan)
}

func TestExtract_TitleFoldedIntoPath(t *testing.T) {
	links := Extract(`[Guide](guide.md "The Guide")`)
	require.Len(t, links, 1)
	assert.Equal(t, `guide.md "The Guide"`, links[0].Path)
}

func TestExtract_KnownLimitation_NestedParentheses(t *testing.T) {
	// The target stops at the first ')'.
	links := Extract("[x](./file(name).md)")
	require.Len(t, links, 1)
	assert.Equal(t, "./file(name", links[0].Path)
}

func TestExtract_ReferenceStyleNotRecognized(t *testing.T) {
	links := Extract("See [API][ref].\n\n[ref]: api.md\n")
	assert.Empty(t, links)
}

func TestExtract_NoLinks(t *testing.T) {
	assert.Empty(t, Extract("plain text with [brackets] and (parens)"))
	assert.Empty(t, Extract(""))
}

func TestExtract_PathStart(t *testing.T) {
	src := "x ![alt](img/a.png) y"
	links := Extract(src)
	require.Len(t, links, 1)
	start := links[0].PathStart()
	assert.Equal(t, "img/a.png", src[start:start+len(links[0].Path)])
}

func TestExtractWithOptions_SkipCode(t *testing.T) {
	src := "" +
		"Inline code: `[Link](./ignored-inline.md)`\n" +
		"\n" +
		"```\n" +
		"[Link](./ignored-fence.md)\n" +
		"```\n" +
		"\n" +
		"~~~\n" +
		"![img](./ignored-tilde.png)\n" +
		"~~~\n" +
		"\n" +
		"Real: [OK](./real.md)\n"

	all := Extract(src)
	require.Len(t, all, 4)

	links := ExtractWithOptions(src, Options{SkipCode: true})
	require.Len(t, links, 1)
	assert.Equal(t, "./real.md", links[0].Path)
}

func TestCodeRanges_Sorted(t *testing.T) {
	src := []byte("`a`\n\n```\nb\n```\n\n`c`\n")
	ranges := CodeRanges(src)
	require.Len(t, ranges, 3)
	for i := 1; i < len(ranges); i++ {
		assert.LessOrEqual(t, ranges[i-1].Start, ranges[i].Start)
	}
	assert.Equal(t, "a", string(src[ranges[0].Start:ranges[0].End]))
}
