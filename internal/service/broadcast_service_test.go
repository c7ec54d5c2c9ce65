package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"word-mixer/internal/model"
)

func usersWithIDs(ids ...int64) []model.User {
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, model.User{ID: id})
	}
	return users
}

func TestBroadcastAggregatesFailures(t *testing.T) {
	sender := &fakeSender{errs: map[int64]error{
		2: fmt.Errorf("send: %w", ErrRecipientUnreachable),
	}}
	b := NewBroadcaster(sender, 0)

	res := b.Send(context.Background(), usersWithIDs(1, 2, 3), "hello")

	assert.Equal(t, BroadcastResult{Sent: 2, Failed: 1}, res)
	assert.Equal(t, []int64{1, 3}, sender.sent)
	assert.Equal(t, []string{"hello", "hello"}, sender.text)
}

func TestBroadcastContinuesAfterUnexpectedErrors(t *testing.T) {
	sender := &fakeSender{errs: map[int64]error{
		1: errors.New("connection reset"),
		3: ErrRecipientUnreachable,
	}}
	b := NewBroadcaster(sender, 0)

	res := b.Send(context.Background(), usersWithIDs(1, 2, 3, 4), "hi")

	assert.Equal(t, BroadcastResult{Sent: 2, Failed: 2}, res)
	assert.Equal(t, []int64{2, 4}, sender.sent)
}

func TestBroadcastIsPaced(t *testing.T) {
	sender := &fakeSender{}
	interval := 20 * time.Millisecond
	b := NewBroadcaster(sender, interval)

	start := time.Now()
	res := b.Send(context.Background(), usersWithIDs(1, 2, 3), "hi")
	elapsed := time.Since(start)

	assert.Equal(t, 3, res.Sent)
	assert.GreaterOrEqual(t, elapsed, 2*interval-time.Millisecond)
}

func TestBroadcastIgnoresCancellation(t *testing.T) {
	sender := &fakeSender{}
	b := NewBroadcaster(sender, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := b.Send(ctx, usersWithIDs(1, 2, 3), "hi")
	assert.Equal(t, BroadcastResult{Sent: 3}, res)
}

func TestBroadcastEmpty(t *testing.T) {
	b := NewBroadcaster(&fakeSender{}, time.Second)
	assert.Equal(t, BroadcastResult{}, b.Send(context.Background(), nil, "hi"))
}
