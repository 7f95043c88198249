package corrector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
)

func TestMapping_Correct(t *testing.T) {
	m := NewMapping(map[string]string{
		"old/spec.md": "docs/specs/spec.md",
		"#top":        "#bottom",
	}, linkpolicy.DefaultRules(), markdown.Options{})

	out, err := m.Correct(context.Background(),
		"[Spec](old/spec.md) [Top](#top) [Keep](keep.md)\n",
		filecontext.FileContext{})
	require.NoError(t, err)
	assert.Equal(t, "[Spec](docs/specs/spec.md) [Top](#top) [Keep](keep.md)\n", out)
	assert.Equal(t, "mapping", m.Name())
}

func TestMapping_SkipCode(t *testing.T) {
	m := NewMapping(map[string]string{"a.md": "b.md"}, linkpolicy.DefaultRules(), markdown.Options{SkipCode: true})

	out, err := m.Correct(context.Background(), "`[x](a.md)` [y](a.md)", filecontext.FileContext{})
	require.NoError(t, err)
	assert.Equal(t, "`[x](a.md)` [y](b.md)", out)
}

func TestMapping_CopiesTable(t *testing.T) {
	table := map[string]string{"a.md": "b.md"}
	m := NewMapping(table, linkpolicy.DefaultRules(), markdown.Options{})
	table["a.md"] = "c.md"

	out, err := m.Correct(context.Background(), "[x](a.md)", filecontext.FileContext{})
	require.NoError(t, err)
	assert.Equal(t, "[x](b.md)", out)
}

func TestMapping_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMapping(nil, linkpolicy.DefaultRules(), markdown.Options{}).Correct(ctx, "[x](a.md)", filecontext.FileContext{})
	require.ErrorIs(t, err, context.Canceled)
}
