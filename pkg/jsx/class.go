package jsx

import (
	"reflect"
	"sort"
	"strings"
)

// ClassSpec is a classified class specification: ClassName, ClassList or
// ClassMap.
type ClassSpec interface {
	composeClass() string
}

// ClassName is one or more space separated class names.
type ClassName string

// ClassList composes its entries in order.
type ClassList []ClassSpec

// ClassToggle includes Name when On is truthy.
type ClassToggle struct {
	Name string
	On   any
}

// ClassMap is an ordered list of toggles.
type ClassMap []ClassToggle

// ClassOf classifies a raw class value. Strings become ClassName, slices
// become ClassList and maps with string keys become a ClassMap ordered by
// key. nil and unsupported values yield nil.
func ClassOf(v any) ClassSpec {
	switch c := v.(type) {
	case nil:
		return nil
	case ClassSpec:
		if classify(c) == kindNull {
			return nil
		}
		return c
	case []ClassToggle:
		return ClassMap(c)
	case []string:
		list := make(ClassList, 0, len(c))
		for _, name := range c {
			list = append(list, ClassName(name))
		}
		return list
	case []any:
		return classList(len(c), func(i int) any { return c[i] })
	}

	switch classify(v) {
	case kindString:
		return ClassName(stringify(v))
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
		m := make(ClassMap, 0, len(keys))
		for _, k := range keys {
			val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			m = append(m, ClassToggle{Name: k, On: val.Interface()})
		}
		return m
	case reflect.Slice, reflect.Array:
		return classList(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	}
	return nil
}

func classList(n int, item func(int) any) ClassSpec {
	list := make(ClassList, 0, n)
	for i := 0; i < n; i++ {
		if c := ClassOf(item(i)); c != nil {
			list = append(list, c)
		}
	}
	return list
}

// ComposeClass resolves a class specification to a trimmed, space
// separated string.
func ComposeClass(spec ClassSpec) string {
	if spec == nil {
		return ""
	}
	return spec.composeClass()
}

// ClassNames classifies v and composes it.
func ClassNames(v any) string {
	return ComposeClass(ClassOf(v))
}

func (c ClassName) composeClass() string {
	return strings.TrimSpace(string(c))
}

func (l ClassList) composeClass() string {
	parts := make([]string, 0, len(l))
	for _, c := range l {
		if s := ComposeClass(c); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (m ClassMap) composeClass() string {
	parts := make([]string, 0, len(m))
	for _, t := range m {
		if !truthy(t.On) {
			continue
		}
		if name := strings.TrimSpace(t.Name); name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}
