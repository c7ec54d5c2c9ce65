package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetRegistersUserWithoutMessage(t *testing.T) {
	dir := &fakeDirectory{}
	svc := NewChatService(dir, newFakeWordStore(), NewReplyService(newFakeWordStore(), nil))

	require.NoError(t, svc.Greet(context.Background(), 7, "neo"))

	require.Len(t, dir.users, 1)
	assert.Equal(t, int64(7), dir.users[0].ID)
	assert.Equal(t, "neo", dir.users[0].Username)
	assert.Nil(t, dir.users[0].LastMessage)
}

func TestLearnStoresMessageAndWords(t *testing.T) {
	ctx := context.Background()
	dir := &fakeDirectory{}
	words := newFakeWordStore()
	svc := NewChatService(dir, words, NewReplyService(words, &scriptedRandom{}))
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	reply, err := svc.Learn(ctx, 7, "neo", "Привет как дела")
	require.NoError(t, err)
	assert.Empty(t, reply, "three words are not enough to answer")

	total, err := words.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	require.Len(t, dir.users, 1)
	require.NotNil(t, dir.users[0].LastMessage)
	assert.Equal(t, "Привет как дела", *dir.users[0].LastMessage)
	assert.Equal(t, now, dir.users[0].LastMessageTime)

	reply, err = svc.Learn(ctx, 7, "neo", "Сегодня хорошая погода, правда?")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(reply), minReplyWords)

	total, err = words.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, "Сегодня хорошая погода, правда?", *dir.users[0].LastMessage)
}

func TestLearnEchoesMessageWords(t *testing.T) {
	ctx := context.Background()
	words := newFakeWordStore(vocabulary...)
	svc := NewChatService(&fakeDirectory{}, words, NewReplyService(words, &scriptedRandom{values: []int{0, 0}}))

	reply, err := svc.Learn(ctx, 1, "", "Кот!")
	require.NoError(t, err)
	require.Len(t, reply, 3)
	assert.Equal(t, "кот", reply[0])
}

func TestLearnStopsOnStorageError(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("database is locked")}
	words := newFakeWordStore()
	svc := NewChatService(dir, words, NewReplyService(words, nil))

	_, err := svc.Learn(context.Background(), 1, "", "Привет как дела")
	require.ErrorIs(t, err, dir.err)

	total, err := words.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}
