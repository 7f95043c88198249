package correction

import (
	"context"

	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
)

// Corrector is the external correction capability. It receives the full
// document and returns the corrected document, or an error.
type Corrector interface {
	Correct(ctx context.Context, content string, fc filecontext.FileContext) (string, error)
}

// CorrectorFunc adapts a function to the Corrector interface.
type CorrectorFunc func(ctx context.Context, content string, fc filecontext.FileContext) (string, error)

// Correct calls f.
func (f CorrectorFunc) Correct(ctx context.Context, content string, fc filecontext.FileContext) (string, error) {
	return f(ctx, content, fc)
}

// Named is implemented by correctors that report a backend name for logs and metrics.
type Named interface {
	Name() string
}

func backendName(c Corrector) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return "custom"
}
