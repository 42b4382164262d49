// Package sanitize provides the text sanitization applied to string fields
// during a mapping pass.
//
// Two modes are offered: Escape renders input inert by HTML-escaping it in
// full, and RichText permits a conservative allowlist of user-generated
// markup while stripping everything dangerous. Both normalize input to NFC
// first and never fail; hostile input is degraded, not rejected.
package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// richTextPolicy is the shared allowlist policy for rich-text fields.
// bluemonday policies are safe for concurrent use once built.
var richTextPolicy = bluemonday.UGCPolicy()

// Escape returns s with all HTML special characters escaped. Use for
// string fields that must never carry markup.
func Escape(s string) string {
	return html.EscapeString(norm.NFC.String(s))
}

// RichText returns s sanitized against a permissive user-generated-content
// allowlist. Entities are unescaped first so pre-escaped markup is
// sanitized rather than double-escaped; script, style, and event-handler
// content is removed.
func RichText(s string) string {
	return richTextPolicy.Sanitize(html.UnescapeString(norm.NFC.String(s)))
}
