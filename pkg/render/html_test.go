package render

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
		absent   string
	}{
		{"bold", "**important**", "<b>important</b>", "<strong>"},
		{"italic", "*aside*", "<i>aside</i>", "<em>"},
		{"plain text", "just words", "just words", "<p>"},
		{"heading", "# Title", "<b>Title</b>", "<h1>"},
		{"list", "- one\n- two", "• one", "<li>"},
		{"inline code", "run `go test`", "<code>go test</code>", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ToHTML(test.markdown)
			if !strings.Contains(got, test.want) {
				t.Errorf("ToHTML(%q) = %q, want it to contain %q", test.markdown, got, test.want)
			}
			if test.absent != "" && strings.Contains(got, test.absent) {
				t.Errorf("ToHTML(%q) = %q, must not contain %q", test.markdown, got, test.absent)
			}
		})
	}
}

func TestToHTML_NeverEmitsParagraphTags(t *testing.T) {
	got := ToHTML("first paragraph\n\nsecond paragraph")
	if strings.Contains(got, "<p>") || strings.Contains(got, "</p>") {
		t.Errorf("ToHTML() = %q, paragraph tags are not supported by Telegram", got)
	}
}
