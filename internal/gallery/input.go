package gallery

import "strings"

// Key is a keyboard key name as reported by browsers (KeyboardEvent.key).
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// HandleKey applies the keyboard surface. Keys are only honored while the
// gallery is open; it reports whether the key was consumed.
func (c *Controller) HandleKey(key Key) bool {
	if !c.IsOpen() {
		return false
	}
	switch key {
	case KeyEscape:
		c.Cancel()
		return true
	case KeyArrowRight:
		c.Next()
		return true
	case KeyArrowLeft:
		c.Previous()
		return true
	default:
		return false
	}
}

// Action names a navigation event carried over HTTP.
type Action string

const (
	ActionNone     Action = ""
	ActionOpen     Action = "open"
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
	ActionGoTo     Action = "goto"
	ActionClose    Action = "close"
)

// ParseAction normalizes an action name. Unknown names yield ActionNone.
func ParseAction(raw string) Action {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionOpen:
		return ActionOpen
	case ActionNext, "next-image":
		return ActionNext
	case ActionPrevious, "prev", "previous-image":
		return ActionPrevious
	case ActionGoTo:
		return ActionGoTo
	case ActionClose, "cancel":
		return ActionClose
	default:
		return ActionNone
	}
}

// Apply dispatches action against the controller. target is the image index
// for ActionGoTo and ignored otherwise.
func (c *Controller) Apply(action Action, target int) bool {
	switch action {
	case ActionNext:
		return c.Next()
	case ActionPrevious:
		return c.Previous()
	case ActionGoTo:
		return c.GoTo(target)
	case ActionClose:
		wasOpen := c.IsOpen()
		c.Close()
		return wasOpen
	default:
		return false
	}
}
