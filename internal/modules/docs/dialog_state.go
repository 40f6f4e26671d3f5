package docs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDialogState = errors.New("invalid dialog state")
	ErrInvalidDialogEvent = errors.New("invalid dialog event")
)

// DialogState is the visibility of the upload dialog. It is the only thing
// deciding whether dialog content is mounted.
type DialogState string

const (
	// DialogClosed is the initial state of every fresh render.
	DialogClosed DialogState = "closed"
	DialogOpen   DialogState = "open"
)

// DialogEvent is an input to the dialog state machine.
type DialogEvent string

const (
	// DialogEventTrigger is fired by the "Upload" button.
	DialogEventTrigger DialogEvent = "trigger"
	// DialogEventDismiss is fired by the close button, a backdrop click or Escape.
	DialogEventDismiss DialogEvent = "dismiss"
)

// ParseDialogState validates a state received from the client.
func ParseDialogState(s string) (DialogState, error) {
	switch state := DialogState(s); state {
	case DialogClosed, DialogOpen:
		return state, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDialogState, s)
	}
}

// ParseDialogEvent validates an event received from the client.
func ParseDialogEvent(s string) (DialogEvent, error) {
	switch event := DialogEvent(s); event {
	case DialogEventTrigger, DialogEventDismiss:
		return event, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDialogEvent, s)
	}
}

// Next returns the state after event. Triggering an open dialog and
// dismissing a closed one leave the state unchanged.
func (s DialogState) Next(event DialogEvent) DialogState {
	switch event {
	case DialogEventTrigger:
		return DialogOpen
	case DialogEventDismiss:
		return DialogClosed
	default:
		return s
	}
}
