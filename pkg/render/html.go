package render

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

var (
	headingOpenRe  = regexp.MustCompile(`<h[1-6][^>]*>`)
	headingCloseRe = regexp.MustCompile(`</h[1-6]>`)
)

// ToHTML renders model-produced markdown into the small HTML subset the
// Telegram Bot API accepts. Tags Telegram doesn't know (p, ul, headings)
// are mapped to supported ones or plain text; pre/code pass through.
func ToHTML(markdown string) string {
	html := string(blackfriday.MarkdownCommon([]byte(markdown)))

	replacements := [][2]string{
		{"<p>", ""}, {"</p>", "\n"},
		{"<strong>", "<b>"}, {"</strong>", "</b>"},
		{"<em>", "<i>"}, {"</em>", "</i>"},
		{"<del>", "<s>"}, {"</del>", "</s>"},
		{"<ul>", ""}, {"</ul>", ""},
		{"<ol>", ""}, {"</ol>", ""},
		{"<li>", "• "}, {"</li>", "\n"},
		{"<blockquote>", ""}, {"</blockquote>", ""},
		{"<hr>", "—"}, {"<hr />", "—"},
	}
	for _, r := range replacements {
		html = strings.ReplaceAll(html, r[0], r[1])
	}

	html = headingOpenRe.ReplaceAllString(html, "<b>")
	html = headingCloseRe.ReplaceAllString(html, "</b>\n")

	return strings.TrimSpace(html)
}
