package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Exit codes returned by the CLI.
const (
	ExitOK          = 0
	ExitGeneral     = 1
	ExitUsage       = 2
	ExitConfig      = 7
	ExitExternal    = 8
	ExitInternal    = 10
	ExitFileSystem  = 11
	ExitInterrupted = 130
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter writing messages to stderr.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	return NewCLIErrorAdapterTo(verbose, logger, os.Stderr)
}

// NewCLIErrorAdapterTo creates a CLI error adapter writing messages to out.
func NewCLIErrorAdapterTo(verbose bool, logger *slog.Logger, out io.Writer) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, out: out}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	classified, ok := AsClassified(err)
	if !ok {
		return ExitGeneral
	}

	switch classified.Category() {
	case CategoryValidation, CategoryInput:
		return ExitUsage
	case CategoryConfig:
		return ExitConfig
	case CategoryCapability, CategoryNetwork:
		return ExitExternal
	case CategoryFileSystem:
		return ExitFileSystem
	case CategoryCanceled:
		return ExitInterrupted
	case CategoryInternal, CategoryRuntime:
		return ExitInternal
	default:
		return ExitGeneral
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	classified, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	if a.verbose {
		return "Error: " + classified.Error()
	}

	switch classified.Category() {
	case CategoryInternal, CategoryRuntime:
		return "Error: internal error occurred (use -v for details)"
	case CategoryCanceled:
		return "Interrupted by user"
	default:
		if cause := classified.Cause(); cause != nil {
			return fmt.Sprintf("Error: %s: %v", classified.Message(), cause)
		}
		return "Error: " + classified.Message()
	}
}

// Handle logs err when appropriate, prints the user-facing message and
// returns the exit code. It does not exit the process.
func (a *CLIErrorAdapter) Handle(err error) int {
	if err == nil {
		return ExitOK
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	return a.ExitCodeFor(err)
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	// Classified errors are already described by FormatError.
	_, ok := AsClassified(err)
	return !ok
}

func (a *CLIErrorAdapter) logError(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}

	attrs := []slog.Attr{slog.String("category", string(classified.Category()))}
	for k, v := range classified.Context() {
		attrs = append(attrs, slog.Any(k, v))
	}
	if classified.Cause() != nil {
		attrs = append(attrs, slog.String("cause", classified.Cause().Error()))
	}
	a.logger.LogAttrs(context.Background(), slogLevelFromSeverity(classified.Severity()), classified.Message(), attrs...)
}

func slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
