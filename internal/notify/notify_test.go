package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgency_MatchesFreedesktopLevels(t *testing.T) {
	assert.Equal(t, byte(0), byte(UrgencyLow))
	assert.Equal(t, byte(1), byte(UrgencyNormal))
	assert.Equal(t, byte(2), byte(UrgencyCritical))
}

func TestDiscard(t *testing.T) {
	id, err := Discard.Notify(Notification{Title: "x"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, Discard.Close(id))
}

func TestNowPlaying_OverDiscard(t *testing.T) {
	np := NewNowPlaying(Discard)
	assert.NoError(t, np.Track(nil))
}
