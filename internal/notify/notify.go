// Package notify shows desktop notifications over the freedesktop D-Bus
// interface.
package notify

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // image path or icon name
	Timeout    int32  // ms; -1 server default, 0 never expires
	ReplacesID uint32 // 0 opens a new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns the ID the server assigned to it.
	Notify(n Notification) (uint32, error)
	// Close dismisses the notification with the given ID.
	Close(id uint32) error
}

// Discard is a Notifier that shows nothing. It stands in when no
// notification server is reachable.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }

func (discard) Close(uint32) error { return nil }
