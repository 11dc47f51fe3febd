package jsx

import (
	"reflect"
	"testing"

	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
)

func TestBindAttributes(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    any
		want     string
		wantNone bool
	}{
		{name: "true is empty", key: "data-foo", value: true, want: ""},
		{name: "empty string", key: "title", value: "", want: ""},
		{name: "string", key: "id", value: "main", want: "main"},
		{name: "int", key: "tabindex", value: 3, want: "3"},
		{name: "float", key: "data-ratio", value: 1.5, want: "1.5"},
		{name: "false omitted", key: "hidden", value: false, wantNone: true},
		{name: "zero omitted", key: "tabindex", value: 0, wantNone: true},
		{name: "nil omitted", key: "lang", value: nil, wantNone: true},
		{name: "non-func on key", key: "onion", value: "yes", want: "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newRuntime(t)
			el := build(t, rt, "div", P(tt.key, tt.value))

			got, ok := el.Attribute(tt.key)
			if tt.wantNone {
				if ok {
					t.Errorf("attribute %q = %q, want it omitted", tt.key, got)
				}
				return
			}
			if !ok || got != tt.want {
				t.Errorf("attribute %q = %q (present %v), want %q", tt.key, got, ok, tt.want)
			}
		})
	}
}

func TestBindReservedKeysNotForwarded(t *testing.T) {
	rt := newRuntime(t)
	el := build(t, rt, "div",
		Children("x"),
		RefTo(NewRef()),
		Style("color: red"),
		Class("c"),
	)

	for _, a := range el.Attributes() {
		switch a.Key {
		case "style", "class":
		default:
			t.Errorf("unexpected attribute %q", a.Key)
		}
	}
}

func TestBindDefinedValue(t *testing.T) {
	rt := newRuntime(t)
	payload := map[string]int{"a": 1}
	el := build(t, rt, "div", P("data", payload))

	if _, ok := el.Attribute("data"); ok {
		t.Error("structured values must not become attributes")
	}
	got, ok := rt.Value(el, "data")
	if !ok {
		t.Fatal("defined value missing")
	}
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(payload).Pointer() {
		t.Error("defined value should be the same map, not a copy")
	}

	if rt.values.define(el, "data", "other") {
		t.Error("defined values must not be replaceable")
	}
	if _, ok := rt.Value(el, "missing"); ok {
		t.Error("unexpected value for missing key")
	}
}

func TestBindHandlerProperty(t *testing.T) {
	rt := newRuntime(t)
	calls := 0
	el := build(t, rt, "button", OnClick(func(dom.Event) { calls++ }))

	if el.HandlerProperty("onclick") == nil {
		t.Fatal("onClick should be installed through the onclick property")
	}
	if n := len(el.Listeners()); n != 0 {
		t.Errorf("got %d listeners, want 0", n)
	}

	el.Dispatch(memdom.NewEvent("click"))
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestBindEventNameResolution(t *testing.T) {
	noop := func(dom.Event) {}

	tests := []struct {
		name         string
		key          string
		wantProperty string
		wantEvent    string
		wantCapture  bool
		wantKind     BindingKind
	}{
		{name: "standard", key: "onMouseOver", wantProperty: "onmouseover", wantKind: BindHandlerProperty},
		{name: "double click", key: "onDoubleClick", wantProperty: "ondblclick", wantKind: BindHandlerProperty},
		{name: "capture", key: "onClickCapture", wantEvent: "click", wantCapture: true, wantKind: BindCaptureListener},
		{name: "double click capture", key: "onDoubleClickCapture", wantEvent: "dblclick", wantCapture: true, wantKind: BindCaptureListener},
		{name: "custom", key: "onMyEvent", wantEvent: "myEvent", wantKind: BindCustomListener},
		{name: "custom lower", key: "onthing-happened", wantEvent: "thing-happened", wantKind: BindCustomListener},
		{name: "window only", key: "onHashChange", wantEvent: "hashchange", wantKind: BindStandardListener},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &recordingObserver{}
			rt := newRuntime(t, WithObserver(obs))
			el := build(t, rt, "div", P(tt.key, noop))

			if len(obs.bindings) != 1 || obs.bindings[0] != tt.wantKind {
				t.Errorf("bindings = %v, want [%v]", obs.bindings, tt.wantKind)
			}

			if tt.wantProperty != "" {
				if el.HandlerProperty(tt.wantProperty) == nil {
					t.Errorf("%s property not set", tt.wantProperty)
				}
				return
			}

			ls := el.Listeners()
			if len(ls) != 1 {
				t.Fatalf("got %d listeners, want 1", len(ls))
			}
			if ls[0].Event != tt.wantEvent || ls[0].Capture != tt.wantCapture {
				t.Errorf("listener = {%q capture=%v}, want {%q capture=%v}",
					ls[0].Event, ls[0].Capture, tt.wantEvent, tt.wantCapture)
			}
		})
	}
}

func TestBindOccupiedHandlerSlotFallsBackToListener(t *testing.T) {
	rt := newRuntime(t)
	var order []string
	el := build(t, rt, "a",
		P("onClick", func(dom.Event) { order = append(order, "property") }),
		P("onclick", func(dom.Event) { order = append(order, "listener") }),
	)

	ls := el.Listeners()
	if len(ls) != 1 || ls[0].Event != "click" || ls[0].Capture {
		t.Fatalf("listeners = %+v, want one bubbling click listener", ls)
	}

	el.Dispatch(memdom.NewEvent("click"))
	if len(order) != 2 || order[0] != "property" || order[1] != "listener" {
		t.Errorf("dispatch order = %v, want [property listener]", order)
	}
}

func TestBindCaptureRunsBeforeBubble(t *testing.T) {
	rt := newRuntime(t)
	var order []string

	child := build(t, rt, "button", OnClick(func(dom.Event) { order = append(order, "child") }))
	build(t, rt, "div",
		Capture("click", func(dom.Event) { order = append(order, "parent capture") }),
		OnClick(func(dom.Event) { order = append(order, "parent bubble") }),
		Children(child),
	)

	child.Dispatch(memdom.NewEvent("click"))

	want := []string{"parent capture", "child", "parent bubble"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestBindCustomEventDispatch(t *testing.T) {
	rt := newRuntime(t)
	var got string
	el := build(t, rt, "div", On("myEvent", func(ev dom.Event) { got = ev.Type() }))

	el.Dispatch(memdom.NewEvent("myevent"))
	if got != "" {
		t.Error("custom event names are case sensitive")
	}
	el.Dispatch(memdom.NewEvent("myEvent"))
	if got != "myEvent" {
		t.Errorf("handler saw %q, want %q", got, "myEvent")
	}
}

func TestBindHandlerAdaptation(t *testing.T) {
	tests := []struct {
		name    string
		handler func(called *int) any
		bound   bool
	}{
		{name: "dom.Handler", handler: func(c *int) any { return dom.Handler(func(dom.Event) { *c++ }) }, bound: true},
		{name: "no args", handler: func(c *int) any { return func() { *c++ } }, bound: true},
		{name: "any arg", handler: func(c *int) any { return func(any) { *c++ } }, bound: true},
		{name: "returns error", handler: func(c *int) any { return func(dom.Event) error { *c++; return nil } }, bound: true},
		{name: "wrong arg", handler: func(c *int) any { return func(int) { *c++ } }, bound: false},
		{name: "two args", handler: func(c *int) any { return func(dom.Event, int) { *c++ } }, bound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newRuntime(t)
			calls := 0
			el := build(t, rt, "div", P("onClick", tt.handler(&calls)))

			el.Dispatch(memdom.NewEvent("click"))
			if bound := calls == 1; bound != tt.bound {
				t.Errorf("handler called %d times, want bound=%v", calls, tt.bound)
			}
		})
	}
}

func TestBindEmptyEventNameSkipped(t *testing.T) {
	rt := newRuntime(t)
	el := build(t, rt, "div",
		P("on", func() {}),
		P("onCapture", func() {}),
	)

	if n := len(el.Listeners()); n != 0 {
		t.Errorf("got %d listeners, want 0", n)
	}
}

func TestBindFuncWithoutOnPrefixOmitted(t *testing.T) {
	obs := &recordingObserver{}
	rt := newRuntime(t, WithObserver(obs))
	el := build(t, rt, "div",
		P("title", func() {}),
		P("render", func(int) string { return "x" }),
	)

	if attrs := el.Attributes(); len(attrs) != 0 {
		t.Errorf("attributes = %v, want none", attrs)
	}
	if n := len(el.Listeners()); n != 0 {
		t.Errorf("got %d listeners, want 0", n)
	}
	want := []BindingKind{BindOmitted, BindOmitted}
	if len(obs.bindings) != len(want) || obs.bindings[0] != want[0] || obs.bindings[1] != want[1] {
		t.Errorf("bindings = %v, want %v", obs.bindings, want)
	}
}
