package correction

import (
	"context"
	"strings"
	"sync/atomic"

	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
)

// fakeCorrector records calls and returns a canned response.
type fakeCorrector struct {
	calls   atomic.Int32
	lastFC  filecontext.FileContext
	respond func(content string) (string, error)
}

func (f *fakeCorrector) Correct(_ context.Context, content string, fc filecontext.FileContext) (string, error) {
	f.calls.Add(1)
	f.lastFC = fc
	return f.respond(content)
}

func (f *fakeCorrector) Name() string { return "fake" }

func echoCorrector() *fakeCorrector {
	return &fakeCorrector{respond: func(content string) (string, error) { return content, nil }}
}

func replaceCorrector(old, repl string) *fakeCorrector {
	return &fakeCorrector{respond: func(content string) (string, error) {
		return strings.ReplaceAll(content, old, repl), nil
	}}
}
