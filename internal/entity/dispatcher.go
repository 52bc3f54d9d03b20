package entity

// MessageDispatcher delivers a notification text to a single recipient
// address. Implementations wrap a concrete messaging provider.
type MessageDispatcher interface {
	Send(recipient, message string) error
}
