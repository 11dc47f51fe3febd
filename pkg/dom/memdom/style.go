package memdom

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

type declaration struct {
	name  string // CSS name, e.g. "z-index" or "--accent"
	value any
}

// Style is an element's inline style declaration. Values assigned through
// Set are kept as given so callers can tell a bare number from a string.
type Style struct {
	el    *Element
	decls []declaration
}

var _ dom.Style = (*Style)(nil)

// Set assigns a style field by its camelCase name.
func (s *Style) Set(name string, value any) error {
	s.put(cssName(name), value)
	s.sync()
	return nil
}

// SetProperty sets a property by its CSS name.
func (s *Style) SetProperty(name, value string) error {
	if !strings.HasPrefix(name, "--") {
		name = strings.ToLower(name)
	}
	s.put(name, value)
	s.sync()
	return nil
}

// Get returns the value assigned to a camelCase style field.
func (s *Style) Get(name string) (any, bool) {
	return s.lookup(cssName(name))
}

// GetPropertyValue returns the string value of a property by CSS name.
func (s *Style) GetPropertyValue(name string) string {
	v, ok := s.lookup(name)
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

// Len returns the number of declarations.
func (s *Style) Len() int { return len(s.decls) }

// CSSText serializes the declarations.
func (s *Style) CSSText() string {
	parts := make([]string, 0, len(s.decls))
	for _, d := range s.decls {
		parts = append(parts, d.name+": "+cast.ToString(d.value)+";")
	}
	return strings.Join(parts, " ")
}

func (s *Style) lookup(name string) (any, bool) {
	for _, d := range s.decls {
		if d.name == name {
			return d.value, true
		}
	}
	return nil, false
}

func (s *Style) put(name string, value any) {
	if value == nil || value == "" {
		for i, d := range s.decls {
			if d.name == name {
				s.decls = append(s.decls[:i], s.decls[i+1:]...)
				return
			}
		}
		return
	}
	for i, d := range s.decls {
		if d.name == name {
			s.decls[i].value = value
			return
		}
	}
	s.decls = append(s.decls, declaration{name: name, value: value})
}

// sync mirrors the declarations into the style attribute.
func (s *Style) sync() {
	if len(s.decls) == 0 {
		s.el.removeAttr("style")
		return
	}
	s.el.setAttr("style", s.CSSText())
}

// parse replaces all declarations with the ones in cssText.
func (s *Style) parse(cssText string) {
	s.decls = s.decls[:0]
	for _, part := range strings.Split(cssText, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = strings.ToLower(name)
		}
		s.put(name, value)
	}
}

// cssName converts a camelCase style field to its CSS property name:
// "zIndex" -> "z-index", "WebkitTransition" -> "-webkit-transition",
// "cssFloat" -> "float".
func cssName(field string) string {
	if field == "cssFloat" {
		return "float"
	}
	var b strings.Builder
	b.Grow(len(field) + 4)
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
