package config

import "git.home.luguber.info/inful/linkmigrate/internal/foundation/normalization"

// BackendType selects the correction capability implementation.
type BackendType string

const (
	BackendCommand BackendType = "command"
	BackendNATS    BackendType = "nats"
	BackendMapping BackendType = "mapping"
)

var backendNormalizer = normalization.NewNormalizer(map[string]BackendType{
	"command": BackendCommand,
	"exec":    BackendCommand,
	"nats":    BackendNATS,
	"mapping": BackendMapping,
	"static":  BackendMapping,
}, "")

// ParseBackend maps a backend spelling onto a BackendType and rejects unknown names.
func ParseBackend(raw string) (BackendType, error) {
	return backendNormalizer.NormalizeWithError(raw)
}

// NormalizeBackend maps a backend spelling onto a BackendType. Unknown
// values are returned unchanged so validation can report them.
func NormalizeBackend(raw string) BackendType {
	if v := backendNormalizer.Normalize(raw); v != "" {
		return v
	}
	return BackendType(raw)
}
