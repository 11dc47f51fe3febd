package jsx

import (
	"reflect"
	"sort"
	"strings"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

// unitlessProperties are style fields whose numeric values are assigned
// without a "px" suffix. The table is kept verbatim for output
// compatibility, including the stroke entries that accept lengths.
var unitlessProperties = map[string]bool{
	"animationIterationCount": true,
	"borderImageOutset":       true,
	"borderImageSlice":        true,
	"borderImageWidth":        true,
	"boxFlex":                 true,
	"boxFlexGroup":            true,
	"boxOrdinalGroup":         true,
	"columnCount":             true,
	"columns":                 true,
	"flex":                    true,
	"flexGrow":                true,
	"flexPositive":            true,
	"flexShrink":              true,
	"flexNegative":            true,
	"flexOrder":               true,
	"gridArea":                true,
	"gridRow":                 true,
	"gridRowEnd":              true,
	"gridRowSpan":             true,
	"gridRowStart":            true,
	"gridColumn":              true,
	"gridColumnEnd":           true,
	"gridColumnSpan":          true,
	"gridColumnStart":         true,
	"fontWeight":              true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,

	// SVG
	"fillOpacity":      true,
	"floodOpacity":     true,
	"stopOpacity":      true,
	"strokeDasharray":  true,
	"strokeDashoffset": true,
	"strokeMiterlimit": true,
	"strokeOpacity":    true,
	"strokeWidth":      true,
}

// IsUnitless reports whether numeric values of the style field are
// assigned without a unit.
func IsUnitless(field string) bool {
	return unitlessProperties[field]
}

// StyleSpec is a classified style specification: StyleText, StyleMap or
// StyleList.
type StyleSpec interface {
	applyStyle(el dom.Element) error
}

// StyleText is CSS text. It replaces the whole inline style.
type StyleText string

// StyleDecl is one style declaration. Property is a camelCase field
// name, or a custom property starting with "-".
type StyleDecl struct {
	Property string
	Value    any
}

// StyleMap is an ordered list of declarations.
type StyleMap []StyleDecl

// StyleList applies its entries left to right.
type StyleList []StyleSpec

// StyleOf classifies a raw style value. Strings become StyleText, maps
// with string keys become a StyleMap ordered by key, slices become a
// StyleList. nil, false, "" and unsupported values yield nil.
func StyleOf(v any) StyleSpec {
	switch s := v.(type) {
	case nil:
		return nil
	case StyleText:
		if s == "" {
			return nil
		}
		return s
	case StyleSpec:
		if classify(s) == kindNull {
			return nil
		}
		return s
	case []StyleDecl:
		return StyleMap(s)
	case []any:
		return styleList(len(s), func(i int) any { return s[i] })
	}

	switch classify(v) {
	case kindString:
		if text := stringify(v); text != "" {
			return StyleText(text)
		}
		return nil
	case kindObject:
	default:
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		m := make(StyleMap, 0, len(keys))
		for _, k := range keys {
			val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			m = append(m, StyleDecl{Property: k, Value: val.Interface()})
		}
		return m
	case reflect.Slice, reflect.Array:
		return styleList(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	}
	return nil
}

func styleList(n int, item func(int) any) StyleSpec {
	list := make(StyleList, 0, n)
	for i := 0; i < n; i++ {
		if s := StyleOf(item(i)); s != nil {
			list = append(list, s)
		}
	}
	return list
}

func (s StyleText) applyStyle(el dom.Element) error {
	return el.SetAttribute("style", string(s))
}

func (m StyleMap) applyStyle(el dom.Element) error {
	style := el.Style()
	for _, d := range m {
		var err error
		switch {
		case strings.HasPrefix(d.Property, "-"):
			err = style.SetProperty(d.Property, stringify(d.Value))
		case classify(d.Value) == kindNumber && IsUnitless(d.Property):
			err = style.Set(d.Property, d.Value)
		case classify(d.Value) == kindNumber:
			err = style.Set(d.Property, formatNumber(d.Value)+"px")
		default:
			err = style.Set(d.Property, d.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (l StyleList) applyStyle(el dom.Element) error {
	for _, s := range l {
		if s == nil {
			continue
		}
		if err := s.applyStyle(el); err != nil {
			return err
		}
	}
	return nil
}
