package service

import (
	"context"
	"time"

	"word-mixer/internal/model"
)

// ChatService records users and learns words from their messages.
type ChatService struct {
	users   UserDirectory
	words   WordStore
	replies *ReplyService
	now     func() time.Time
}

func NewChatService(users UserDirectory, words WordStore, replies *ReplyService) *ChatService {
	return &ChatService{
		users:   users,
		words:   words,
		replies: replies,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Greet registers the user without touching their last message.
func (s *ChatService) Greet(ctx context.Context, userID int64, username string) error {
	return s.users.Upsert(ctx, model.User{ID: userID, Username: username})
}

// Learn stores the message as the user's latest, adds its words to the vocabulary
// and returns reply words seeded by the same words.
func (s *ChatService) Learn(ctx context.Context, userID int64, username, text string) ([]string, error) {
	if err := s.users.Upsert(ctx, model.User{
		ID:              userID,
		Username:        username,
		LastMessage:     &text,
		LastMessageTime: s.now(),
	}); err != nil {
		return nil, err
	}

	words := Normalize(text)
	if err := s.words.Ingest(ctx, words); err != nil {
		return nil, err
	}

	return s.replies.Generate(ctx, words)
}
