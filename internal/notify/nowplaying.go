package notify

import (
	"github.com/llehouerou/prosperity/internal/player"
)

const (
	appName        = "prosperity"
	appDisplayName = "Prosperity"

	nowPlayingTimeout = 4000 // ms
)

// NowPlaying shows one notification per track change, replacing the
// previous one instead of stacking them.
type NowPlaying struct {
	notifier Notifier
	lastID   uint32
	lastPath string
}

// NewNowPlaying wraps notifier. A nil notifier disables notifications.
func NewNowPlaying(notifier Notifier) *NowPlaying {
	return &NowPlaying{notifier: notifier}
}

// Track announces info unless it is the track announced last.
func (n *NowPlaying) Track(info *player.TrackInfo) error {
	if n == nil || n.notifier == nil || info == nil || info.Path == n.lastPath {
		return nil
	}
	id, err := n.notifier.Notify(ForTrack(info, n.lastID))
	if err != nil {
		return err
	}
	n.lastID = id
	n.lastPath = info.Path
	return nil
}

// ForTrack builds the notification for a newly started track.
func ForTrack(info *player.TrackInfo, replaces uint32) Notification {
	body := info.Artist
	if info.Album != "" {
		if body != "" {
			body += " - "
		}
		body += info.Album
	}
	return Notification{
		Title:      info.Title,
		Body:       body,
		Icon:       player.CoverArt(info.Path),
		Timeout:    nowPlayingTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
