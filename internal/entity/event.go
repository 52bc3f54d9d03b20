package entity

// Event is one outbound notification: who gets which text.
// The engine emits events, the dispatcher delivers them.
type Event struct {
	Recipient string
	Message   string
}
