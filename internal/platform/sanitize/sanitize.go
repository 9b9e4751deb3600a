// Package sanitize holds the two text passes applied to accepted payloads before
// they are stored. StripMarkup removes markup and script content; Escape trims and
// HTML-escapes the remaining text once. Run them in that order, never merged.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/valyala/bytebufferpool"
)

// Sanitizer is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// StripMarkup drops every tag (and the content of script/style elements) from value.
// Text without a closed tag is returned as is, so a lone "<" is left for Escape.
// The policy entity-encodes its output; that encoding is undone here so Escape stays
// the only pass that encodes.
func (s *Sanitizer) StripMarkup(value string) string {
	if !hasTag(value) {
		return value
	}
	return html.UnescapeString(s.policy.Sanitize(value))
}

// hasTag reports whether a '<' is followed by a '>' somewhere after it.
func hasTag(value string) bool {
	open := strings.IndexByte(value, '<')
	return open >= 0 && strings.IndexByte(value[open:], '>') > 0
}

// Escape trims value and replaces & < > " ' / ` with HTML entities.
func (s *Sanitizer) Escape(value string) string {
	value = strings.TrimSpace(value)
	if !strings.ContainsAny(value, "&<>\"'/`") {
		return value
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, r := range value {
		switch r {
		case '&':
			_, _ = buf.WriteString("&amp;")
		case '<':
			_, _ = buf.WriteString("&lt;")
		case '>':
			_, _ = buf.WriteString("&gt;")
		case '"':
			_, _ = buf.WriteString("&quot;")
		case '\'':
			_, _ = buf.WriteString("&#x27;")
		case '/':
			_, _ = buf.WriteString("&#x2F;")
		case '`':
			_, _ = buf.WriteString("&#96;")
		default:
			_, _ = buf.WriteString(string(r))
		}
	}

	return buf.String()
}

// Apply runs StripMarkup then Escape.
func (s *Sanitizer) Apply(value string) string {
	return s.Escape(s.StripMarkup(value))
}
