package sanitizer

import "strings"

// htmlEscaper maps the five HTML-significant characters in a single pass,
// so "&lt;" becomes "&amp;lt;" and is never escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes &, <, >, " and ' for safe interpolation into HTML text
// and attribute values. The apostrophe is written as &#039;.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
