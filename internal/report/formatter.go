// Package report renders correction statistics and link listings for humans and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
	"git.home.luguber.info/inful/linkmigrate/internal/markdown"
)

// Entry is one classified link occurrence.
type Entry struct {
	Index  int               `json:"index"`
	Kind   markdown.LinkKind `json:"kind"`
	Label  string            `json:"label"`
	Path   string            `json:"path"`
	Offset int               `json:"offset"`
	Skip   bool              `json:"skip"`
	Reason linkpolicy.Reason `json:"reason"`
}

// Listing is the classified link inventory of one document.
type Listing struct {
	File             string  `json:"file"`
	TotalLinks       int     `json:"total_links"`
	SkippedLinks     int     `json:"skipped_links"`
	ProcessableLinks int     `json:"processable_links"`
	Links            []Entry `json:"links"`
}

// NewListing classifies links with rules.
func NewListing(file string, links []markdown.Link, rules linkpolicy.Rules) *Listing {
	l := &Listing{File: file, TotalLinks: len(links), Links: make([]Entry, 0, len(links))}
	for i, link := range links {
		d := rules.Classify(link.Path)
		if d.Skip {
			l.SkippedLinks++
		} else {
			l.ProcessableLinks++
		}
		l.Links = append(l.Links, Entry{
			Index:  i + 1,
			Kind:   link.Kind,
			Label:  link.Label,
			Path:   link.Path,
			Offset: link.Start,
			Skip:   d.Skip,
			Reason: d.Reason,
		})
	}
	return l
}

// Formatter formats a link listing for output.
type Formatter interface {
	Format(w io.Writer, listing *Listing) error
}

// NewFormatter creates a formatter for format ("text" or "json").
func NewFormatter(format string) Formatter {
	if strings.EqualFold(format, "json") {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter formats listings as human-readable text.
type TextFormatter struct{}

// Format outputs one line per link followed by a summary.
func (f *TextFormatter) Format(w io.Writer, listing *Listing) error {
	if _, err := fmt.Fprintf(w, "Links in %s:\n", listing.File); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}

	for _, e := range listing.Links {
		status := "process"
		if e.Skip {
			status = "skip:" + string(e.Reason)
		}
		if _, err := fmt.Fprintf(w, "%3d  %-5s  %-16s  [%s](%s)\n", e.Index, e.Kind, status, e.Label, e.Path); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total: %d  Processable: %d  Skipped: %d\n",
		listing.TotalLinks, listing.ProcessableLinks, listing.SkippedLinks)
	return err
}

// JSONFormatter formats listings as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, listing *Listing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listing)
}
