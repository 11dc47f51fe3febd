package render

import "strings"

// escapeHTML escapes text content.
func escapeHTML(s string) string { return escape(s, false) }

// escapeAttr escapes an attribute value. Whitespace control characters
// are encoded as well so values survive re-parsing unchanged.
func escapeAttr(s string) string { return escape(s, true) }

func escape(s string, attr bool) string {
	if !strings.ContainsAny(s, "&<>\"'\n\r\t") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n', '\r', '\t':
			if !attr {
				buf.WriteRune(r)
				continue
			}
			buf.WriteString("&#")
			buf.WriteString(controlCode(r))
			buf.WriteByte(';')
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

func controlCode(r rune) string {
	switch r {
	case '\n':
		return "10"
	case '\r':
		return "13"
	default:
		return "9"
	}
}
