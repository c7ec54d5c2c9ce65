package service

import (
	"context"

	"word-mixer/internal/model"
)

// WordStore is the persistent vocabulary.
type WordStore interface {
	Ingest(ctx context.Context, words []string) error
	SampleRandom(ctx context.Context, n int) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// UserDirectory is the persistent record of known users.
type UserDirectory interface {
	Upsert(ctx context.Context, user model.User) error
	ListAll(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
}

// Random is the source of randomness for reply generation.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Sender delivers a plain text message to a chat.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}
