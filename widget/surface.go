package widget

import "chatbox/model"

// Surface is the display capability the controller drives. Implementations
// own the display list; the controller holds no copy of it.
type Surface interface {
	// Input returns the current content of the input field.
	Input() string

	// ClearInput empties the input field.
	ClearInput()

	// Append adds msg to the end of the display list and scrolls so that it
	// is visible.
	Append(msg model.Message)

	// Remove deletes the message with the given id. It reports whether a
	// message was removed.
	Remove(id string) bool
}
