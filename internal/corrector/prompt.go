package corrector

import (
	"strings"
	"text/template"

	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
)

var promptTemplate = template.Must(template.New("prompt").Parse(`You are a markdown link correction assistant. Identify and correct broken or outdated relative links in the markdown document below.

Context:
- File: {{.Context.RelativeToRoot}}
- Directory: {{.Context.Directory}}

Instructions:
1. Review every relative link in the document.
2. Decide whether each link still points at the right file after a documentation migration.
3. Typical migrations: files moved from the repository root into docs/, files moved from docs/ into docs/specs/ or docs/changes/, renamed files or changed extensions.
4. Leave external URLs, anchors and email links exactly as they are.
5. Change only links that clearly need correction. Do not touch any other text.

Return ONLY the corrected markdown document, without explanations or code fences.

Document:
{{.Content}}`))

type promptData struct {
	Context filecontext.FileContext
	Content string
}

// BuildPrompt combines the instructions, the file context and the document
// into the single payload sent to a text-generation backend.
func BuildPrompt(content string, fc filecontext.FileContext) (string, error) {
	var b strings.Builder
	if err := promptTemplate.Execute(&b, promptData{Context: fc, Content: content}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// normalizeOutput trims surrounding whitespace from generated text and keeps
// the original document's trailing newline convention.
func normalizeOutput(out, original string) string {
	out = strings.TrimSpace(out)
	if out != "" && strings.HasSuffix(original, "\n") {
		out += "\n"
	}
	return out
}
