package ws

import (
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/model"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/ws"
)

// SnapshotBroadcaster pushes profile changes to the user's websocket topic.
// It implements notify.SnapshotObserver and replaces the old pattern of
// probing the page for presentation hooks.
type SnapshotBroadcaster struct {
	notificationHub *ws.NotificationHub
}

func NewSnapshotBroadcaster() *SnapshotBroadcaster {
	return &SnapshotBroadcaster{notificationHub: ws.NewNotificationHub()}
}

func (b *SnapshotBroadcaster) SnapshotChanged(snapshot model.ProfileSnapshot) {
	b.notificationHub.Publish(snapshot.Uid, map[string]any{
		"type":    "PROFILE_SNAPSHOT",
		"payload": snapshot,
	})
}

func (b *SnapshotBroadcaster) PhotoUploadStateChanged(uid string, inProgress bool) {
	b.notificationHub.Publish(uid, map[string]any{
		"type":    "PHOTO_UPLOAD_STATE",
		"payload": map[string]any{"inProgress": inProgress},
	})
}
