package export

import (
	"io"
	"strings"
)

// WriteText renders the document as plain text.
func WriteText(w io.Writer, doc Document) error {
	var b strings.Builder
	b.WriteString(doc.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(doc.Title)))
	b.WriteString("\n")

	for _, s := range doc.Sections {
		b.WriteString("\n")
		b.WriteString(s.Heading)
		b.WriteString("\n")
		for _, l := range s.Lines {
			b.WriteString("  ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
