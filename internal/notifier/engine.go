package notifier

import (
	"fmt"

	"github.com/mgrushin/mars-monitor/internal/entity"
)

// Engine decides which notifications a state change produces. It is a
// pure diff over two snapshots: no I/O, no clock, no stored state, so
// every decision is reproducible in tests.
type Engine struct {
	dir *entity.Directory
}

// NewEngine creates an engine bound to a recipient directory.
func NewEngine(dir *entity.Directory) *Engine {
	return &Engine{dir: dir}
}

// Evaluate compares the previous snapshot (nil right after start or a
// session switch) with the current one and returns the events to send.
// Diagnostics describe conditions worth logging that produced no event.
//
// Rules, in order:
//  1. research phase: broadcast once when the phase is entered
//  2. several waiting colors: broadcast once when the set changes
//  3. one active color: notify that player once when the color changes
func (e *Engine) Evaluate(prev, cur *entity.Snapshot) (events []entity.Event, diags []string) {
	if cur == nil {
		return nil, nil
	}

	if cur.InResearch() {
		if !prev.InResearch() {
			events = e.broadcast(MsgResearch)
		}
		return events, nil
	}

	colors := cur.ActiveColors()
	switch {
	case len(colors) == 0:
		return nil, nil

	case len(colors) > 1:
		if !sameColorSet(colors, prev.ActiveColors()) {
			events = e.broadcast(MsgMultiWait)
		}
		return events, nil
	}

	// Exactly one color is waiting to act.
	if sameColorSet(colors, prev.ActiveColors()) {
		return nil, nil
	}
	color := colors[0]
	name := e.dir.ResolveColor(color, cur)
	if name == "" {
		return nil, []string{fmt.Sprintf("no player known for active color %q", color)}
	}
	addr, ok := e.dir.Address(name)
	if !ok {
		return nil, []string{fmt.Sprintf("no contact address configured for player %q", name)}
	}
	return []entity.Event{{Recipient: addr, Message: MsgYourTurn}}, nil
}

// broadcast fans a message out to every configured recipient.
func (e *Engine) broadcast(message string) []entity.Event {
	addresses := e.dir.Addresses()
	events := make([]entity.Event, 0, len(addresses))
	for _, addr := range addresses {
		events = append(events, entity.Event{Recipient: addr, Message: message})
	}
	return events
}

// sameColorSet compares two color lists as sets, ignoring order.
func sameColorSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, color := range a {
		seen[color] = struct{}{}
	}
	for _, color := range b {
		if _, ok := seen[color]; !ok {
			return false
		}
	}
	return true
}
