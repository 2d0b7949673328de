package profile

import (
	"github.com/google/uuid"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/model"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/pubsub"
)

const snapshotEventTopic string = "profile.snapshot.events"

type SnapshotEvent struct {
	Id       string                `json:"id"`
	Type     string                `json:"type"`
	Snapshot model.ProfileSnapshot `json:"snapshot"`
}

func (e SnapshotEvent) GetEventTopicName() string {
	return snapshotEventTopic
}

// EventPublisher forwards snapshot changes to pub/sub so other services
// (reward workers, leaderboards) see profile attribute updates. It is one of
// the observers registered at bootstrap.
type EventPublisher struct{}

func (EventPublisher) SnapshotChanged(snapshot model.ProfileSnapshot) {
	pubsub.Publish(SnapshotEvent{
		Id:       uuid.New().String(),
		Type:     "PROFILE_SNAPSHOT_UPDATED",
		Snapshot: snapshot,
	})
}

// Upload progress is transient presentation state, not a cross-service event.
func (EventPublisher) PhotoUploadStateChanged(string, bool) {}
