package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "jeswin", Escape("jeswin"))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", Escape("<b>bold</b>"))
	assert.Equal(t, "a &amp; b", Escape("a & b"))
}

func TestRichText_KeepsAllowedMarkup(t *testing.T) {
	assert.Equal(t, "<b>bold</b>", RichText("<b>bold</b>"))
	assert.Equal(t, "<em>hi</em>", RichText("<em>hi</em>"))
}

func TestRichText_StripsScripts(t *testing.T) {
	assert.Equal(t, "<b>hi</b>", RichText("<b>hi</b><script>alert(1)</script>"))
	assert.NotContains(t, RichText(`<img src=x onerror=alert(1)>`), "onerror")
}

func TestRichText_UnescapesBeforeSanitizing(t *testing.T) {
	// Pre-escaped markup is unescaped and then sanitized, not double-escaped.
	assert.Equal(t, "<b>hi</b>", RichText("&lt;b&gt;hi&lt;/b&gt;"))
}

func TestNeverFails(t *testing.T) {
	// Degraded, not rejected.
	assert.NotPanics(t, func() {
		_ = Escape(string([]byte{0xff, 0xfe}))
		_ = RichText("<<<<>>>> &&& \x00")
	})
}
