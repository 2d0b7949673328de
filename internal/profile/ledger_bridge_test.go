package profile

import (
	"context"
	"testing"

	gcppubsub "cloud.google.com/go/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	uids   []string
	events []any
}

func (p *recordingPublisher) Publish(uid string, event any) {
	p.uids = append(p.uids, uid)
	p.events = append(p.events, event)
}

func TestHandleTransactionRecorded(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expectForward bool
	}{
		{
			name:          "forwards a decoded event to the uid topic",
			payload:       `{"uid":"u1","amount":12.5,"status":"confirmed","txHash":"0xabc"}`,
			expectForward: true,
		},
		{
			name:          "drops an unparseable payload",
			payload:       `not-json`,
			expectForward: false,
		},
		{
			name:          "drops an event without a uid",
			payload:       `{"amount":12.5,"status":"confirmed"}`,
			expectForward: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &recordingPublisher{}
			bridge := &ledgerBridge{notificationHub: publisher}

			bridge.handleTransactionRecorded(context.Background(), &gcppubsub.Message{Data: []byte(tt.payload)})

			if !tt.expectForward {
				assert.Empty(t, publisher.uids)
				return
			}

			require.Equal(t, []string{"u1"}, publisher.uids)
			event, ok := publisher.events[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "TRANSACTION_RECORDED", event["type"])

			forwarded, ok := event["payload"].(*LedgerTransactionRecorded)
			require.True(t, ok)
			assert.Equal(t, "u1", forwarded.Uid)
			assert.Equal(t, 12.5, forwarded.Amount)
			assert.Equal(t, "confirmed", forwarded.Status)
			assert.Equal(t, "0xabc", forwarded.TxHash)
		})
	}
}
