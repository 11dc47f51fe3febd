package dom

// globalEventHandlers are the handler properties every HTML element
// exposes (the GlobalEventHandlers mixin). Each starts out unset.
var globalEventHandlers = setOf(
	// Mouse
	"onauxclick", "onclick", "oncontextmenu", "ondblclick",
	"onmousedown", "onmouseenter", "onmouseleave", "onmousemove",
	"onmouseout", "onmouseover", "onmouseup", "onwheel",

	// Keyboard
	"onkeydown", "onkeypress", "onkeyup",

	// Form
	"onbeforeinput", "onchange", "oninput", "oninvalid", "onreset",
	"onselect", "onsubmit", "onformdata",

	// Focus
	"onblur", "onfocus", "onfocusin", "onfocusout",

	// Drag
	"ondrag", "ondragend", "ondragenter", "ondragleave", "ondragover",
	"ondragstart", "ondrop",

	// Touch
	"ontouchcancel", "ontouchend", "ontouchmove", "ontouchstart",

	// Pointer
	"ongotpointercapture", "onlostpointercapture", "onpointercancel",
	"onpointerdown", "onpointerenter", "onpointerleave", "onpointermove",
	"onpointerout", "onpointerover", "onpointerup",

	// Scroll
	"onscroll", "onscrollend",

	// Media
	"onabort", "oncanplay", "oncanplaythrough", "oncuechange",
	"ondurationchange", "onemptied", "onended", "onloadeddata",
	"onloadedmetadata", "onloadstart", "onpause", "onplay", "onplaying",
	"onprogress", "onratechange", "onseeked", "onseeking", "onstalled",
	"onsuspend", "ontimeupdate", "onvolumechange", "onwaiting",

	// Animation and transition
	"onanimationcancel", "onanimationend", "onanimationiteration",
	"onanimationstart", "ontransitioncancel", "ontransitionend",
	"ontransitionrun", "ontransitionstart",

	// Clipboard
	"oncopy", "oncut", "onpaste",

	// Misc
	"onbeforetoggle", "oncancel", "onclose", "onerror", "onload",
	"onresize", "onsecuritypolicyviolation", "onselectionchange",
	"onselectstart", "onslotchange", "ontoggle",
)

// windowEventHandlers are handler properties that only exist on the
// window object (the WindowEventHandlers mixin and friends).
var windowEventHandlers = setOf(
	"onafterprint", "onbeforeprint", "onbeforeunload", "ondevicemotion",
	"ondeviceorientation", "ondeviceorientationabsolute", "onhashchange",
	"onlanguagechange", "onmessage", "onmessageerror", "onoffline",
	"ononline", "onpagehide", "onpageshow", "onpopstate",
	"onrejectionhandled", "onstorage", "onunhandledrejection", "onunload",
)

func setOf(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// IsElementEventHandler reports whether name is a handler property that
// every element exposes.
func IsElementEventHandler(name string) bool {
	_, ok := globalEventHandlers[name]
	return ok
}

// IsWindowEventHandler reports whether name is a handler property of
// the window object. Every element handler is also a window handler.
func IsWindowEventHandler(name string) bool {
	if _, ok := windowEventHandlers[name]; ok {
		return true
	}
	return IsElementEventHandler(name)
}
