package sanitization

import (
	"html/template"
	"strings"
)

// SanitizeString escapes user input for interpolation into an HTML document.
// Markup is kept as entities so the submitted text survives verbatim.
func SanitizeString(input string) string {
	return template.HTMLEscapeString(input)
}

// SanitizeMultiline escapes input and keeps its line breaks as <br>
func SanitizeMultiline(input string) string {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = SanitizeString(line)
	}
	return strings.Join(lines, "<br>")
}
