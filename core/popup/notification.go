package popup

import (
	"time"

	"discussions-app-api/core/domain"
)

// Notification timings
const (
	NotificationAppearDelay = 10 * time.Millisecond
	NotificationHold        = 2 * time.Second
	NotificationFade        = 300 * time.Millisecond
)

// NotificationPhase is where a notification is in its show/hide cycle
type NotificationPhase int

const (
	// NotificationEntering is attached but still transparent
	NotificationEntering NotificationPhase = iota

	// NotificationVisible is fully shown
	NotificationVisible

	// NotificationLeaving is fading out before removal
	NotificationLeaving
)

// String returns the phase name
func (p NotificationPhase) String() string {
	switch p {
	case NotificationEntering:
		return "entering"
	case NotificationVisible:
		return "visible"
	case NotificationLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Notification is a transient floating message anchored on a mode checkbox
type Notification struct {
	ID      int
	Message string
	Anchor  domain.SearchMode
	Phase   NotificationPhase
}
