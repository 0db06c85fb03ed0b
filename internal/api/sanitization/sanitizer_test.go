package sanitization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "Jane Doe"},
		{"jane@example.com", "jane@example.com"},
		{"<script>alert(1)</script>Hi", "&lt;script&gt;alert(1)&lt;/script&gt;Hi"},
		{"allergy to <shellfish>", "allergy to &lt;shellfish&gt;"},
		{"Bride & Groom", "Bride &amp; Groom"},
		{"O'Brien \"Jr\"", "O&#39;Brien &#34;Jr&#34;"},
		{"  spaced   out  ", "  spaced   out  "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeString(tt.in))
		})
	}
}

func TestSanitizeMultiline(t *testing.T) {
	assert.Equal(t, "line one<br>line two<br>&lt;i&gt;x&lt;/i&gt;", SanitizeMultiline("line one\r\nline two\n<i>x</i>"))
}
