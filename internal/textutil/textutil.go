// Package textutil provides small helpers for turning HTML-ish product
// descriptions into plain text. It does not attempt full HTML parsing;
// catalog exports carry simple markup snippets, and a predictable tag strip
// plus whitespace collapse is all the display and search layers need.
package textutil

import "strings"

// StripTags removes markup sequences of the form <...> from s, delimiters
// included. Anything between '<' and the next '>' is treated as a tag. This
// is a heuristic, not a parser; it assumes attribute values do not contain
// angle brackets, which holds for product-description snippets.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseWhitespace reduces runs of spaces, tabs, and line breaks to a
// single ASCII space and trims the ends.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			pending = b.Len() > 0
		default:
			if pending {
				b.WriteByte(' ')
				pending = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PlainText strips tags and collapses whitespace in one pass-through call.
func PlainText(s string) string {
	if s == "" {
		return s
	}
	return CollapseWhitespace(StripTags(s))
}

// Snippet returns the first max runes of the plain-text form of s, appending
// an ellipsis when the text was cut.
func Snippet(s string, max int) string {
	text := PlainText(s)
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
