package apply

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// Elements whose content is never shown, not even as text.
const droppedElements = "script, style, iframe, object, embed, noscript, template, frame, frameset"

// Escaping is off: the output is read as text, never parsed as Markdown.
var textConverter = md.NewConverter("", true, &md.Options{EscapeMode: "disabled"})

// PlainText neutralizes rich text submitted in the "about me" field. Active
// content is dropped and the remaining markup becomes Markdown-flavoured
// plain text, safe to render with escaping.
func PlainText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	doc.Find(droppedElements).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return strings.TrimSpace(doc.Text())
	}

	text, err := textConverter.ConvertString(body)
	if err != nil {
		return strings.TrimSpace(doc.Find("body").Text())
	}
	return strings.TrimSpace(text)
}
