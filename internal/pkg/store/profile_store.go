package store

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/model"
)

const (
	usersCollection        string = "users"
	transactionsCollection string = "transactions"
)

// ErrNotFound is returned by Read when no profile document exists for the uid.
// Transport and permission failures come back as their own errors.
var ErrNotFound = errors.New("profile record not found")

type ProfileStore struct {
	Client *firestore.Client
}

func (s *ProfileStore) Read(ctx context.Context, uid string) (*model.ProfileSnapshot, error) {
	doc, err := s.Client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var snapshot model.ProfileSnapshot
	if err := doc.DataTo(&snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// MergeWrite upserts only the given fields, leaving the rest of the document
// untouched. Single-document merges are atomic in Firestore; nothing beyond
// that is guaranteed.
func (s *ProfileStore) MergeWrite(ctx context.Context, uid string, fields map[string]any) error {
	_, err := s.Client.Collection(usersCollection).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (s *ProfileStore) RecentTransactions(ctx context.Context, uid string, limit int) ([]model.TransactionRecord, error) {
	iter := s.Client.Collection(transactionsCollection).
		Where("uid", "==", uid).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	records := []model.TransactionRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var record model.TransactionRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, err
		}
		if record.Status == "" {
			record.Status = model.TransactionStatusPending
		}
		records = append(records, record)
	}
	return records, nil
}
