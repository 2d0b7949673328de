package model

import "time"

const (
	TransactionStatusPending   string = "pending"
	TransactionStatusConfirmed string = "confirmed"
	TransactionStatusFailed    string = "failed"
)

// TransactionRecord is owned by the ledger service; this backend only reads
// and renders it.
type TransactionRecord struct {
	Uid       string    `json:"uid" firestore:"uid"`
	Amount    float64   `json:"amount" firestore:"amount"`
	Status    string    `json:"status" firestore:"status"`
	Note      string    `json:"note,omitempty" firestore:"note"`
	TxHash    string    `json:"txHash,omitempty" firestore:"txHash"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
