package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"empty", "", ""},
		{"plain", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"tags", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"quotes", `say "hi" 'there'`, "say &quot;hi&quot; &#39;there&#39;"},
		{"unicode", "héllo → 世界", "héllo → 世界"},
		{"newline kept", "a\nb", "a\nb"},
		{"tab kept beside entity", "\t<b>", "\t&lt;b&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"plain", "card", "card"},
		{"breakout", `x" onload="evil()`, "x&quot; onload=&quot;evil()"},
		{"whitespace", "a\nb\rc\td", "a&#10;b&#13;c&#9;d"},
		{"entity", "&amp;", "&amp;amp;"},
		{"mixed", "a'\n<", "a&#39;&#10;&lt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
