package corrector

import (
	"fmt"

	"git.home.luguber.info/inful/linkmigrate/internal/config"
	"git.home.luguber.info/inful/linkmigrate/internal/correction"
	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
)

// Backend is a correction capability holding resources that need releasing.
type Backend interface {
	correction.Corrector
	correction.Named
	Close() error
}

// New builds the backend selected by cfg.Backend.
func New(cfg config.CorrectionConfig, rules linkpolicy.Rules, extract markdown.Options) (Backend, error) {
	switch cfg.Backend {
	case config.BackendCommand:
		return NewCommand(cfg.Command), nil
	case config.BackendNATS:
		return NewNATS(cfg.NATS), nil
	case config.BackendMapping:
		return NewMapping(cfg.Mapping, rules, extract), nil
	default:
		return nil, fmt.Errorf("unsupported correction backend %q", cfg.Backend)
	}
}
