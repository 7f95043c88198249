// Package normalization maps loosely written configuration strings onto enum values.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer converts case- and whitespace-insensitive strings into values of T.
type Normalizer[T comparable] struct {
	values       map[string]T
	defaultValue T
	keys         []string
}

// NewNormalizer creates a normalizer from a map of accepted spellings.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	n := &Normalizer[T]{
		values:       make(map[string]T, len(values)),
		defaultValue: defaultValue,
		keys:         make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

// Normalize returns the value for raw, or the default when raw is unknown or empty.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// NormalizeWithError is Normalize but rejects unknown non-empty input.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	key := clean(raw)
	if key == "" {
		return n.defaultValue, nil
	}
	if v, ok := n.values[key]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.keys)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
