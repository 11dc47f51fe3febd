package jsx

import (
	"unicode"
	"unicode/utf8"
)

// On creates an event handler prop for the named event: On("click", h)
// is the "onClick" prop and On("myEvent", h) the "onMyEvent" prop, which
// binds a listener for "myEvent".
func On(event string, handler any) Prop {
	return P("on"+upperFirst(event), handler)
}

// Capture creates a capturing handler prop: Capture("click", h) is the
// "onClickCapture" prop.
func Capture(event string, handler any) Prop {
	return P("on"+upperFirst(event)+"Capture", handler)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Prop { return On("click", handler) }

// OnDoubleClick handles double-click events.
func OnDoubleClick(handler any) Prop { return On("doubleClick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Prop { return On("mouseDown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Prop { return On("mouseUp", handler) }

// OnMouseOver handles mouseover events.
func OnMouseOver(handler any) Prop { return On("mouseOver", handler) }

// OnMouseOut handles mouseout events.
func OnMouseOut(handler any) Prop { return On("mouseOut", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Prop { return On("keyDown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Prop { return On("keyUp", handler) }

// Form events

// OnInput handles input events.
func OnInput(handler any) Prop { return On("input", handler) }

// OnChange handles change events.
func OnChange(handler any) Prop { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Prop { return On("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Prop { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Prop { return On("blur", handler) }
