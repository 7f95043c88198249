package markdown

// LinkKind distinguishes image links from plain links.
type LinkKind string

const (
	LinkKindImage LinkKind = "image"
	LinkKindLink  LinkKind = "link"
)

// Link is a single link occurrence as written in the document.
//
// Links carry no identity beyond their position: the same target written twice
// yields two values. Start and End are byte offsets of RawSpan in the scanned
// text, with End exclusive.
type Link struct {
	Kind    LinkKind
	Label   string
	Path    string
	RawSpan string
	Start   int
	End     int
}

// Options controls how links are scanned.
type Options struct {
	// SkipCode drops matches that start inside fenced or indented code blocks
	// and inline code spans.
	SkipCode bool
}
