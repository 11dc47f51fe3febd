package jsx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/spf13/cast"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

// valueKind is the shape of a property, style or child value.
type valueKind uint8

const (
	kindNull   valueKind = iota // nil, or a nil pointer/map/slice/func
	kindBool                    // bool and named bool types
	kindString                  // string and named string types
	kindNumber                  // every integer and float kind
	kindFunc                    // non-nil func
	kindObject                  // anything else
)

// classify reports the shape of v.
func classify(v any) valueKind {
	switch x := v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case string:
		return kindString
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return kindNumber
	case dom.Handler:
		if x == nil {
			return kindNull
		}
		return kindFunc
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return kindBool
	case reflect.String:
		return kindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.Func:
		if rv.IsNil() {
			return kindNull
		}
		return kindFunc
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			return kindNull
		}
	}
	return kindObject
}

// toFloat returns the numeric value of a kindNumber value.
func toFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return math.NaN()
}

// truthy mirrors JavaScript truthiness: nil, false, "", 0 and NaN are
// falsy, everything else is truthy.
func truthy(v any) bool {
	switch classify(v) {
	case kindNull:
		return false
	case kindBool:
		return reflect.ValueOf(v).Bool()
	case kindString:
		return reflect.ValueOf(v).Len() > 0
	case kindNumber:
		f := toFloat(v)
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// isTrue reports whether v is the boolean true.
func isTrue(v any) bool {
	return classify(v) == kindBool && reflect.ValueOf(v).Bool()
}

// isEmptyString reports whether v is a string of length zero.
func isEmptyString(v any) bool {
	return classify(v) == kindString && reflect.ValueOf(v).Len() == 0
}

// stringify converts v to its string form.
func stringify(v any) string {
	switch classify(v) {
	case kindNull:
		return ""
	case kindString:
		return reflect.ValueOf(v).String()
	case kindBool:
		return strconv.FormatBool(reflect.ValueOf(v).Bool())
	case kindNumber:
		return formatNumber(v)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// formatNumber renders a number in its shortest round-trip form:
// 10 -> "10", 0.5 -> "0.5".
func formatNumber(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cast.ToString(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cast.ToString(rv.Uint())
	}
	f := rv.Float()
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case rv.Kind() == reflect.Float32:
		return cast.ToString(float32(f))
	}
	return cast.ToString(f)
}

var eventType = reflect.TypeOf((*dom.Event)(nil)).Elem()

// asHandler adapts a callable value to a dom.Handler. Besides the
// direct forms it accepts, by reflection, any func taking no arguments
// or a single argument that a dom.Event can be assigned to. Results are
// discarded.
func asHandler(v any) (dom.Handler, bool) {
	switch h := v.(type) {
	case dom.Handler:
		return h, h != nil
	case func(dom.Event):
		return h, h != nil
	case func():
		if h == nil {
			return nil, false
		}
		return func(dom.Event) { h() }, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	t := rv.Type()
	switch {
	case t.IsVariadic():
		return nil, false
	case t.NumIn() == 0:
		return func(dom.Event) { rv.Call(nil) }, true
	case t.NumIn() == 1 && eventType.AssignableTo(t.In(0)):
		return func(ev dom.Event) {
			arg := reflect.New(eventType).Elem()
			if ev != nil {
				arg.Set(reflect.ValueOf(ev))
			}
			rv.Call([]reflect.Value{arg})
		}, true
	}
	return nil, false
}
