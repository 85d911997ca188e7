package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPublish struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	published []recordedPublish
	closed    bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.published = append(f.published, recordedPublish{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublish_RoutesByEventType(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "vidtube.accounts"}
	event := domain.AccountEvent{Type: domain.EventUserRegistered, UserID: "u-1", Username: "alice", OccurredAt: time.Now().UTC()}

	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "vidtube.accounts", got.exchange)
	assert.Equal(t, "user.registered", got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var decoded domain.AccountEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, "alice", decoded.Username)
}

func TestPublish_AfterClose(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "x"}
	require.NoError(t, p.Close())
	assert.True(t, ch.closed)

	err := p.Publish(context.Background(), domain.AccountEvent{Type: domain.EventUserProfileUpdated})
	assert.Error(t, err)
}

func TestPublish_CanceledContext(t *testing.T) {
	p := &Publisher{channel: &fakeChannel{}, exchange: "x"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, domain.AccountEvent{}), context.Canceled)
}
