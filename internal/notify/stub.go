//go:build !linux

package notify

// New returns Discard; desktop notifications are Linux only.
func New() (Notifier, error) {
	return Discard, nil
}
