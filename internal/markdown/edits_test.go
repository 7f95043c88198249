package markdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyEdits_SingleReplacement(t *testing.T) {
	src := []byte("See [API](./api-guide.md) for details.\n")
	old := []byte("./api-guide.md")
	idx := bytes.Index(src, old)
	require.NotEqual(t, -1, idx)

	out, err := ApplyEdits(src, []Edit{{Start: idx, End: idx + len(old), Replacement: []byte("./api_guide.md")}})
	require.NoError(t, err)
	require.Equal(t, "See [API](./api_guide.md) for details.\n", string(out))
}

func TestApplyEdits_CRLFInputPreserved(t *testing.T) {
	src := []byte("A: ./old.md\r\nB: ./old.md\r\n")

	idx := bytes.Index(src, []byte("./old.md"))
	require.NotEqual(t, -1, idx)

	out, err := ApplyEdits(src, []Edit{{Start: idx, End: idx + len("./old.md"), Replacement: []byte("./new.md")}})
	require.NoError(t, err)
	require.Equal(t, "A: ./new.md\r\nB: ./old.md\r\n", string(out))
}

func TestApplyEdits_RejectsOverlappingEdits(t *testing.T) {
	_, err := ApplyEdits([]byte("abcdef"), []Edit{
		{Start: 1, End: 4, Replacement: []byte("X")},
		{Start: 3, End: 5, Replacement: []byte("Y")},
	})
	require.ErrorIs(t, err, ErrOverlappingEdits)
}

func TestApplyEdits_RejectsOutOfBounds(t *testing.T) {
	_, err := ApplyEdits([]byte("abc"), []Edit{{Start: 2, End: 9}})
	require.Error(t, err)
}

func TestRewritePaths_RewritesMappedTargetsOnly(t *testing.T) {
	src := "See [Spec](old/spec.md), ![img](old/spec.md) and [Other](keep.md).\n"
	links := Extract(src)
	require.Len(t, links, 3)

	out, n, err := RewritePaths(src, links, map[string]string{"old/spec.md": "docs/specs/spec.md"})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "See [Spec](docs/specs/spec.md), ![img](docs/specs/spec.md) and [Other](keep.md).\n", out)
}

func TestRewritePaths_NoMatchReturnsInput(t *testing.T) {
	src := "[a](b.md)"
	out, n, err := RewritePaths(src, Extract(src), map[string]string{"x.md": "y.md"})
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, src, out)
}
