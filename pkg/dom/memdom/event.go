package memdom

import "github.com/vango-dev/jsxdom/pkg/dom"

// Phase is the propagation phase of a dispatched event.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

// Event is a synthetic event dispatched through a memdom tree.
type Event struct {
	typ           string
	target        *Element
	currentTarget *Element
	phase         Phase
	stopped       bool
}

var _ dom.Event = (*Event)(nil)

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{typ: typ}
}

// Type implements dom.Event.
func (ev *Event) Type() string { return ev.typ }

// Target implements dom.Event.
func (ev *Event) Target() dom.Node { return ev.target }

// CurrentTarget returns the element whose handler is running.
func (ev *Event) CurrentTarget() *Element { return ev.currentTarget }

// Phase returns the current propagation phase.
func (ev *Event) Phase() Phase { return ev.phase }

// StopPropagation prevents the event from reaching further elements.
func (ev *Event) StopPropagation() { ev.stopped = true }

// Dispatch fires ev at e: capture listeners from the root down, then the
// target's capture listeners, handler property and bubble listeners, then
// handler properties and bubble listeners from the parent up.
func (e *Element) Dispatch(ev *Event) {
	ev.target = e

	var path []*Element // root first
	for p, ok := e.Parent(); ok; p, ok = p.Parent() {
		path = append([]*Element{p}, path...)
	}

	ev.phase = PhaseCapturing
	for _, el := range path {
		if ev.stopped {
			return
		}
		el.fire(ev, true)
	}

	if ev.stopped {
		return
	}
	ev.phase = PhaseAtTarget
	e.fire(ev, true)
	e.fireSlot(ev)
	e.fire(ev, false)

	ev.phase = PhaseBubbling
	for i := len(path) - 1; i >= 0; i-- {
		if ev.stopped {
			return
		}
		path[i].fireSlot(ev)
		path[i].fire(ev, false)
	}
	ev.phase = PhaseNone
}

func (e *Element) fire(ev *Event, capture bool) {
	ev.currentTarget = e
	for _, l := range e.Listeners() {
		if l.Event == ev.typ && l.Capture == capture {
			l.Handler(ev)
		}
	}
}

func (e *Element) fireSlot(ev *Event) {
	name := "on" + ev.typ
	if !dom.IsElementEventHandler(name) {
		return
	}
	ev.currentTarget = e
	if h := e.slots[name]; h != nil {
		h(ev)
	}
}
