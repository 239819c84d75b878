//go:build !linux

package mpris

// Adapter keeps the snapshot but serves nothing on non-Linux platforms.
type Adapter struct {
	*bridge
}

// New returns an adapter that never receives remote commands.
func New(send Sender) (*Adapter, error) {
	return &Adapter{bridge: newBridge(send)}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
