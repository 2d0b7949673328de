package notify

import (
	"sync"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/model"
)

// SnapshotObserver is implemented by presentation-side components that want to
// hear about profile changes. Observers register once at bootstrap instead of
// being probed for existence at call time.
type SnapshotObserver interface {
	SnapshotChanged(snapshot model.ProfileSnapshot)
	PhotoUploadStateChanged(uid string, inProgress bool)
}

type Registry struct {
	registrationMutex sync.Mutex
	observers         []SnapshotObserver
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(observer SnapshotObserver) {
	r.registrationMutex.Lock()
	defer r.registrationMutex.Unlock()
	r.observers = append(r.observers, observer)
}

func (r *Registry) PublishSnapshot(snapshot model.ProfileSnapshot) {
	for _, observer := range r.snapshot() {
		observer.SnapshotChanged(snapshot)
	}
}

func (r *Registry) PublishUploadState(uid string, inProgress bool) {
	for _, observer := range r.snapshot() {
		observer.PhotoUploadStateChanged(uid, inProgress)
	}
}

func (r *Registry) snapshot() []SnapshotObserver {
	r.registrationMutex.Lock()
	defer r.registrationMutex.Unlock()
	observers := make([]SnapshotObserver, len(r.observers))
	copy(observers, r.observers)
	return observers
}
