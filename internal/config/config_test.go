package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}\n"))
	require.NoError(t, err)

	assert.Equal(t, BackendCommand, cfg.Correction.Backend)
	assert.Equal(t, 30*time.Second, cfg.Correction.TimeoutDuration())
	assert.Equal(t, "gemini", cfg.Correction.Command.Program)
	assert.Equal(t, "gemini-2.5-flash", cfg.Correction.Command.Model)
	assert.Equal(t, "linkmigrate.correct", cfg.Correction.NATS.Subject)
	assert.Equal(t, linkpolicy.DefaultRules(), cfg.Links.Rules())
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestParse_FullConfig(t *testing.T) {
	t.Setenv("LINKMIGRATE_TEST_NATS", "nats://nats.internal:4222")

	cfg, err := Parse([]byte(`
correction:
  backend: NATS
  timeout: 45s
  root: /srv/docs
  nats:
    url: ${LINKMIGRATE_TEST_NATS}
    subject: docs.links.correct
links:
  scheme_prefixes: ["http://", "https://", "ssh://"]
  email_heuristic: false
  skip_code: true
logging:
  level: debug
  format: json
metrics:
  textfile: /tmp/linkmigrate.prom
`))
	require.NoError(t, err)

	assert.Equal(t, BackendNATS, cfg.Correction.Backend)
	assert.Equal(t, 45*time.Second, cfg.Correction.TimeoutDuration())
	assert.Equal(t, "/srv/docs", cfg.Correction.Root)
	assert.Equal(t, "nats://nats.internal:4222", cfg.Correction.NATS.URL)
	assert.Equal(t, "docs.links.correct", cfg.Correction.NATS.Subject)
	assert.True(t, cfg.Links.SkipCode)
	assert.Equal(t, "/tmp/linkmigrate.prom", cfg.Metrics.Textfile)
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat(string(cfg.Logging.Format)))

	rules := cfg.Links.Rules()
	assert.True(t, rules.ShouldSkip("ssh://git@host/x"))
	assert.False(t, rules.ShouldSkip("mailto:a@b.c"))
	assert.False(t, rules.ShouldSkip("foo@bar/baz.md"))
	assert.True(t, rules.ShouldSkip("#top"))
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{name: "unknown backend", yaml: "correction:\n  backend: carrier-pigeon\n", contains: "backend"},
		{name: "bad timeout", yaml: "correction:\n  timeout: soon\n", contains: "timeout"},
		{name: "negative timeout", yaml: "correction:\n  timeout: -1s\n", contains: "timeout"},
		{name: "mapping without entries", yaml: "correction:\n  backend: mapping\n", contains: "mapping"},
		{name: "empty scheme prefix", yaml: "links:\n  scheme_prefixes: [\"\"]\n", contains: "scheme_prefixes"},
		{name: "malformed yaml", yaml: "correction: [\n", contains: "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_MappingBackend(t *testing.T) {
	cfg, err := Parse([]byte("correction:\n  backend: static\n  mapping:\n    old/spec.md: docs/specs/spec.md\n"))
	require.NoError(t, err)
	assert.Equal(t, BackendMapping, cfg.Correction.Backend)
	assert.Equal(t, "docs/specs/spec.md", cfg.Correction.Mapping["old/spec.md"])
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, found, err := LoadOrDefault(DefaultPath)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, BackendCommand, cfg.Correction.Backend)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("LINKMIGRATE_TEST_SUBJECT", "")
	require.NoError(t, os.Unsetenv("LINKMIGRATE_TEST_SUBJECT"))

	require.NoError(t, os.WriteFile(".env", []byte("LINKMIGRATE_TEST_SUBJECT=from.dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(DefaultPath, []byte("correction:\n  nats:\n    subject: ${LINKMIGRATE_TEST_SUBJECT}\n"), 0o600))

	cfg, found, err := LoadOrDefault(DefaultPath)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "from.dotenv", cfg.Correction.NATS.Subject)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkmigrate.yaml")

	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendCommand, cfg.Correction.Backend)
	assert.NotEmpty(t, cfg.Correction.Mapping)
}

func TestLoggingConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LoggingConfig{Level: "Debug"}.SlogLevel().String())
	assert.Equal(t, "WARN", LoggingConfig{Level: "warning"}.SlogLevel().String())
	assert.Equal(t, "INFO", LoggingConfig{Level: "nonsense"}.SlogLevel().String())
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend(" Exec ")
	require.NoError(t, err)
	assert.Equal(t, BackendCommand, b)

	_, err = ParseBackend("carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
	assert.Contains(t, err.Error(), "mapping")
}
