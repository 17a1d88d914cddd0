// Package event dispatches named events along a chain of targets.
//
// A Target forwards bubbling events to its parent until a listener stops
// propagation. Listeners run synchronously within a bubbletea Update and may
// hand back a command for the program to run.
package event

import (
	tea "charm.land/bubbletea/v2"
)

// Event is a named occurrence with an arbitrary payload.
type Event struct {
	Type    string
	Detail  any
	Bubbles bool

	target  *Target
	stopped bool
}

// New creates a non-bubbling event.
func New(typ string, detail any) *Event {
	return &Event{
		Type:   typ,
		Detail: detail,
	}
}

// NewBubbling creates an event that travels up to the target's ancestors.
func NewBubbling(typ string, detail any) *Event {
	return &Event{
		Type:    typ,
		Detail:  detail,
		Bubbles: true,
	}
}

// StopPropagation keeps the event from reaching further targets.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// Stopped reports whether propagation was stopped.
func (ev *Event) Stopped() bool {
	return ev.stopped
}

// Target returns the target the event was first dispatched on.
func (ev *Event) Target() *Target {
	return ev.target
}

// Listener handles an event, optionally returning a command.
type Listener func(ev *Event) tea.Cmd

// Target holds listeners and an optional parent.
type Target struct {
	name      string
	parent    *Target
	listeners map[string][]Listener
}

// NewTarget creates a target, parent may be nil.
func NewTarget(name string, parent *Target) *Target {
	return &Target{
		name:      name,
		parent:    parent,
		listeners: map[string][]Listener{},
	}
}

// Name returns the target's name.
func (tgt *Target) Name() string {
	return tgt.name
}

// SetParent attaches the target below parent.
func (tgt *Target) SetParent(parent *Target) {
	tgt.parent = parent
}

// On subscribes a listener to events of the given type.
func (tgt *Target) On(typ string, listener Listener) {
	tgt.listeners[typ] = append(tgt.listeners[typ], listener)
}

// Dispatch delivers ev to this target's listeners and, for bubbling events,
// to each ancestor in turn until propagation is stopped.
// Commands returned by listeners are batched.
func (tgt *Target) Dispatch(ev *Event) tea.Cmd {

	if ev.target == nil {
		ev.target = tgt
	}

	var cmds []tea.Cmd
	for current := tgt; current != nil; current = current.parent {

		// all listeners on a target run even if one of them stops propagation
		for _, listener := range current.listeners[ev.Type] {
			cmds = append(cmds, listener(ev))
		}

		if ev.stopped || !ev.Bubbles {
			break
		}
	}

	return tea.Batch(cmds...)
}
