// Package linkpolicy decides which link targets are candidates for correction.
//
// A target is skipped when it points outside the document set (a URL scheme),
// inside the current document (an anchor) or looks like an email address.
// Everything else is processable.
package linkpolicy

import (
	"strings"

	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
	"git.home.luguber.info/inful/linkmigrate/internal/util/sets"
)

// Reason names the rule that classified a target.
type Reason string

const (
	ReasonNone     Reason = "none"
	ReasonExternal Reason = "external"
	ReasonAnchor   Reason = "anchor"
	ReasonEmail    Reason = "email"
)

// Decision is the outcome of classifying one target.
type Decision struct {
	Skip   bool
	Reason Reason
}

// Rules holds the skip rules. Rules are evaluated in order: scheme prefixes,
// anchor prefixes, then the email heuristic. The first match wins.
type Rules struct {
	SchemePrefixes      []string
	AnchorPrefixes      []string
	EmailHeuristic      bool
	EmailExemptPrefixes []string
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		SchemePrefixes:      []string{"http://", "https://", "mailto:", "ftp://", "tel:"},
		AnchorPrefixes:      []string{"#"},
		EmailHeuristic:      true,
		EmailExemptPrefixes: []string{"http://", "https://"},
	}
}

// Classify returns the decision for path.
//
// The email heuristic is coarse: any '@' outside an exempt prefix
// skips the target, so "foo@bar/baz.md" is skipped too.
func (r Rules) Classify(path string) Decision {
	if hasAnyPrefix(path, r.SchemePrefixes) {
		return Decision{Skip: true, Reason: ReasonExternal}
	}
	if hasAnyPrefix(path, r.AnchorPrefixes) {
		return Decision{Skip: true, Reason: ReasonAnchor}
	}
	if r.EmailHeuristic && strings.Contains(path, "@") && !hasAnyPrefix(path, r.EmailExemptPrefixes) {
		return Decision{Skip: true, Reason: ReasonEmail}
	}
	return Decision{Reason: ReasonNone}
}

// ShouldSkip reports whether path is excluded from correction.
func (r Rules) ShouldSkip(path string) bool {
	return r.Classify(path).Skip
}

// Partition splits links into skipped and processable, preserving order.
func (r Rules) Partition(links []markdown.Link) (skipped, processable []markdown.Link) {
	for _, l := range links {
		if r.ShouldSkip(l.Path) {
			skipped = append(skipped, l)
		} else {
			processable = append(processable, l)
		}
	}
	return skipped, processable
}

// ProcessablePaths returns the distinct targets of the processable links.
func (r Rules) ProcessablePaths(links []markdown.Link) sets.Set[string] {
	paths := make(sets.Set[string], len(links))
	for _, l := range links {
		if !r.ShouldSkip(l.Path) {
			paths.Add(l.Path)
		}
	}
	return paths
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
