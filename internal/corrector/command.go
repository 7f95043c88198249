package corrector

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"git.home.luguber.info/inful/linkmigrate/internal/config"
	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
	"git.home.luguber.info/inful/linkmigrate/internal/foundation/errors"
)

// maxStderr bounds how much of the child's stderr ends up in error messages.
const maxStderr = 512

// Command runs an external program per document.
type Command struct {
	program string
	args    []string
}

// NewCommand builds a Command from configuration. A configured model is
// passed as "--model <model>" before any extra arguments.
func NewCommand(cfg config.CommandConfig) *Command {
	args := make([]string, 0, len(cfg.Args)+2)
	if cfg.Model != "" {
		args = append(args, "--model", cfg.Model)
	}
	args = append(args, cfg.Args...)
	return &Command{program: cfg.Program, args: args}
}

func (c *Command) Name() string { return string(config.BackendCommand) }

// Correct writes the prompt to the program's stdin and returns its stdout.
// A non-zero exit status or blank output is an error. The process is killed
// when ctx is done.
func (c *Command) Correct(ctx context.Context, content string, fc filecontext.FileContext) (string, error) {
	prompt, err := BuildPrompt(content, fc)
	if err != nil {
		return "", errors.InternalError("failed to build prompt").WithCause(err).Build()
	}

	// #nosec G204 -- program and args come from the operator's configuration
	cmd := exec.CommandContext(ctx, c.program, c.args...)
	cmd.Stdin = strings.NewReader(prompt)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.CapabilityError(fmt.Sprintf("%s failed", c.program)).
			WithCause(err).
			WithContext("stderr", tail(stderr.String(), maxStderr)).
			Build()
	}

	out := normalizeOutput(stdout.String(), content)
	if out == "" {
		return "", errors.CapabilityError(fmt.Sprintf("%s returned no output", c.program)).Build()
	}
	return out, nil
}

// Close is a no-op; each call starts its own process.
func (c *Command) Close() error { return nil }

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
