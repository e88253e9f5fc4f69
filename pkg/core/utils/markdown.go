package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanMarkdown strips an outer wrapping code fence from a model reply.
// Gemini occasionally wraps the whole rehab estimate in ```markdown ... ```
// even when told not to; the estimate parser wants the bare document.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// ValidateMarkdown reports whether the input parses to a non-empty
// Markdown document. Goldmark is very permissive, so this only catches
// catastrophic replies (empty or whitespace-only text, a reply that
// yields no blocks); it is a sanity gate, not a schema check.
func ValidateMarkdown(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil && doc.HasChildren()
}
