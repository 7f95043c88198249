package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/linkmigrate/internal/config"
	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
)

func TestNew(t *testing.T) {
	cfg := config.Default().Correction
	rules := linkpolicy.DefaultRules()

	for _, backend := range []config.BackendType{config.BackendCommand, config.BackendNATS, config.BackendMapping} {
		t.Run(string(backend), func(t *testing.T) {
			cfg.Backend = backend
			b, err := New(cfg, rules, markdown.Options{})
			require.NoError(t, err)
			assert.Equal(t, string(backend), b.Name())
			assert.NoError(t, b.Close())
		})
	}

	cfg.Backend = "carrier-pigeon"
	_, err := New(cfg, rules, markdown.Options{})
	require.Error(t, err)
}
