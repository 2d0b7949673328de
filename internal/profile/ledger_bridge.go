package profile

import (
	"context"

	gcppubsub "cloud.google.com/go/pubsub"
	"github.com/rs/zerolog/log"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/utils"
)

// LedgerTransactionRecorded is emitted by the ledger service whenever it
// writes a reward transaction. The bridge only relays a refresh hint to the
// affected user's websocket topic; the records themselves stay ledger-owned
// and are re-read on demand.
type LedgerTransactionRecorded struct {
	Uid    string  `json:"uid"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	TxHash string  `json:"txHash"`
}

// notificationPublisher is the slice of the websocket hub the bridge needs.
type notificationPublisher interface {
	Publish(uid string, event any)
}

type ledgerBridge struct {
	notificationHub notificationPublisher
}

func (b *ledgerBridge) handleTransactionRecorded(_ context.Context, message *gcppubsub.Message) {
	log.Info().Msg("Received message payload " + string(message.Data))
	messagePayload, err := utils.JsonDecodeByteStream[LedgerTransactionRecorded](message.Data)
	if err != nil {
		log.Warn().Err(err).Msg("Error while parsing LedgerTransactionRecorded message")
		return
	}
	if messagePayload.Uid == "" {
		log.Warn().Msg("LedgerTransactionRecorded message missing uid")
		return
	}

	message.Ack()

	wsEvent := map[string]any{
		"type":    "TRANSACTION_RECORDED",
		"payload": messagePayload,
	}
	b.notificationHub.Publish(messagePayload.Uid, wsEvent)
}
