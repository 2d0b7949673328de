package profile

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/model"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/notify"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/reject"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/store"
)

const (
	maxImageBytes           int64 = 5 * 1024 * 1024
	defaultTransactionLimit int   = 10
)

var ethAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

var (
	errImageType           = errors.New("selected file is not an image")
	errImageTooLarge       = errors.New("image exceeds the 5MB limit")
	errWalletAddressFormat = errors.New("malformed ethereum address")
)

// Durability reports which storage tier ended up holding a value after an
// update: the remote document store, or the device-local fallback cache.
// Both count as success; callers that care can tell them apart.
type Durability string

const (
	DurabilityRemote Durability = "remote"
	DurabilityLocal  Durability = "local-fallback"
)

type ProfileStore interface {
	Read(ctx context.Context, uid string) (*model.ProfileSnapshot, error)
	MergeWrite(ctx context.Context, uid string, fields map[string]any) error
	RecentTransactions(ctx context.Context, uid string, limit int) ([]model.TransactionRecord, error)
}

type ImageHost interface {
	Upload(ctx context.Context, image []byte, filename string) (string, error)
}

type FallbackCache interface {
	Get(key string) string
	Set(key string, value string)
}

// Service keeps one consistent in-memory profile snapshot per signed-in
// session and reconciles attribute writes across the image host, the document
// store, and the local fallback cache. Every remote call is a single attempt;
// there are no automatic retries.
type Service struct {
	store    ProfileStore
	images   ImageHost
	cache    FallbackCache
	notifier *notify.Registry

	sessionMutex sync.RWMutex
	sessions     map[string]*model.ProfileSnapshot
}

func NewService(profileStore ProfileStore, images ImageHost, cache FallbackCache, notifier *notify.Registry) *Service {
	return &Service{
		store:    profileStore,
		images:   images,
		cache:    cache,
		notifier: notifier,
		sessions: make(map[string]*model.ProfileSnapshot),
	}
}

// LoadProfile reads the profile record and makes it the session snapshot. A
// missing record, and equally an unreachable store, fall back to synthesized
// defaults: the read path is best-effort and never fails the caller.
func (s *Service) LoadProfile(ctx context.Context, identity model.Identity) *model.ProfileSnapshot {
	snapshot, err := s.store.Read(ctx, identity.Uid)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn().Err(err).Msg("Profile read failed, using default profile data")
		}
		snapshot = s.defaultSnapshot(identity)
	}

	s.sessionMutex.Lock()
	s.sessions[identity.Uid] = snapshot
	published := *snapshot
	s.sessionMutex.Unlock()

	s.notifier.PublishSnapshot(published)
	return &published
}

func (s *Service) defaultSnapshot(identity model.Identity) *model.ProfileSnapshot {
	photoUrl := identity.PhotoURL
	if photoUrl == "" {
		photoUrl = s.cache.Get(photoCacheKey(identity.Uid))
	}

	return &model.ProfileSnapshot{
		Uid:          identity.Uid,
		Email:        identity.Email,
		Username:     identity.FallbackUsername(),
		PhotoURL:     photoUrl,
		ReferralCode: ReferralCode(identity.Uid),
	}
}

// UpdatePhoto uploads a new profile photo and records the hosted URL. Upload
// failure is fatal to the call; a merge-write failure afterwards is tolerated,
// because the image is already durably hosted and the session snapshot plus
// local cache can still carry the reference.
func (s *Service) UpdatePhoto(ctx context.Context, identity model.Identity, image []byte, mimeType string, size int64) (string, *reject.ProblemWithTrace) {
	if problem := validatePhoto(mimeType, size); problem != nil {
		return "", problem
	}

	s.notifier.PublishUploadState(identity.Uid, true)
	defer s.notifier.PublishUploadState(identity.Uid, false)

	photoUrl, err := s.images.Upload(ctx, image, "profile-photo")
	if err != nil {
		return "", &reject.ProblemWithTrace{Problem: reject.ImageUploadProblem(err), Cause: err}
	}

	fields := map[string]any{
		"photoURL":       photoUrl,
		"photoUpdatedAt": time.Now().UTC(),
		"uid":            identity.Uid,
		"email":          identity.Email,
	}
	if err := s.store.MergeWrite(ctx, identity.Uid, fields); err != nil {
		log.Warn().Err(err).Msg("Profile store update failed, continuing with local update")
	}

	s.cache.Set(photoCacheKey(identity.Uid), photoUrl)

	s.sessionMutex.Lock()
	snapshot, sessionActive := s.sessions[identity.Uid]
	var published model.ProfileSnapshot
	if sessionActive {
		snapshot.PhotoURL = photoUrl
		published = *snapshot
	}
	s.sessionMutex.Unlock()

	if sessionActive {
		s.notifier.PublishSnapshot(published)
	}

	return photoUrl, nil
}

// UpdateWalletAddress validates and persists a payout address. The
// user-visible contract is "address accepted", not "address replicated": a
// store failure downgrades durability to the local cache but still succeeds.
func (s *Service) UpdateWalletAddress(ctx context.Context, identity model.Identity, address string) (Durability, *reject.ProblemWithTrace) {
	address = strings.TrimSpace(address)
	if !ethAddressPattern.MatchString(address) {
		return "", &reject.ProblemWithTrace{Problem: reject.WalletAddressProblem(), Cause: errWalletAddressFormat}
	}

	fields := map[string]any{
		"walletAddress": address,
		"manualWallet":  true,
		"uid":           identity.Uid,
		"email":         identity.Email,
	}
	if err := s.store.MergeWrite(ctx, identity.Uid, fields); err != nil {
		log.Warn().Err(err).Msg("Profile store unreachable, mirroring wallet address locally")
		s.cache.Set(walletCacheKey(identity.Uid), address)
		return DurabilityLocal, nil
	}

	s.sessionMutex.Lock()
	snapshot, sessionActive := s.sessions[identity.Uid]
	var published model.ProfileSnapshot
	if sessionActive {
		snapshot.WalletAddress = address
		snapshot.ManualWallet = true
		published = *snapshot
	}
	s.sessionMutex.Unlock()

	if sessionActive {
		s.notifier.PublishSnapshot(published)
	}

	return DurabilityRemote, nil
}

// RecentTransactions fetches the newest ledger records for the user. This is
// a display-only read: an empty result and a query failure both render as
// "nothing to show".
func (s *Service) RecentTransactions(ctx context.Context, identity model.Identity, limit int) []model.TransactionRecord {
	if limit <= 0 || limit > defaultTransactionLimit {
		limit = defaultTransactionLimit
	}

	records, err := s.store.RecentTransactions(ctx, identity.Uid, limit)
	if err != nil {
		log.Warn().Err(err).Msg("Ledger query failed, rendering empty transaction list")
		return []model.TransactionRecord{}
	}
	return records
}

// CurrentSnapshot returns a copy of the live session snapshot, or nil when no
// session is active for the uid.
func (s *Service) CurrentSnapshot(uid string) *model.ProfileSnapshot {
	s.sessionMutex.RLock()
	defer s.sessionMutex.RUnlock()

	snapshot, ok := s.sessions[uid]
	if !ok {
		return nil
	}
	published := *snapshot
	return &published
}

// EndSession discards the session snapshot on sign-out. In-flight calls for
// the uid run to completion and their results are dropped.
func (s *Service) EndSession(uid string) {
	s.sessionMutex.Lock()
	defer s.sessionMutex.Unlock()
	delete(s.sessions, uid)
}

// validatePhoto runs the photo constraints that must hold before any network
// activity: an image content type and at most 5 MiB. The handler calls it
// before buffering the multipart payload, the service before uploading.
func validatePhoto(mimeType string, size int64) *reject.ProblemWithTrace {
	if !strings.HasPrefix(mimeType, "image/") {
		return &reject.ProblemWithTrace{Problem: reject.ImageTypeProblem(mimeType), Cause: errImageType}
	}
	if size > maxImageBytes {
		return &reject.ProblemWithTrace{Problem: reject.ImageTooLargeProblem(), Cause: errImageTooLarge}
	}
	return nil
}

func photoCacheKey(uid string) string {
	return uid + ":photoURL"
}

func walletCacheKey(uid string) string {
	return uid + ":walletAddress"
}
