package title

import "strings"

// markdownSpecials are the characters escaped in link/heading text.
// Backslash is listed first so the escaping character itself is handled
// before the characters it introduces.
const markdownSpecials = `\*_[]()#`

// Escape backslash-escapes Markdown-significant characters in display
// text. The input is processed in a single left-to-right pass, so
// backslashes inserted by the escaping never get escaped twice. Link
// target paths must not be passed through Escape.
func Escape(text string) string {
	if !strings.ContainsAny(text, markdownSpecials) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		if r < 128 && strings.ContainsRune(markdownSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape reverses Escape: a backslash followed by a Markdown-significant
// character collapses to that character. Headings read back from generated
// pages pass through here so a further Escape does not double up; without
// this, regenerating an index whose title carries a special character would
// never converge.
func Unescape(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && strings.IndexByte(markdownSpecials, text[i+1]) >= 0 {
			i++
		}
		b.WriteByte(text[i])
	}
	return b.String()
}
