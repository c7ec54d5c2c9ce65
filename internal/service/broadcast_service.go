package service

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/time/rate"

	"word-mixer/internal/model"
)

// BroadcastResult aggregates per-recipient outcomes.
type BroadcastResult struct {
	Sent   int
	Failed int
}

// Broadcaster sends one message to many users, one send per interval.
type Broadcaster struct {
	sender   Sender
	interval time.Duration
}

func NewBroadcaster(sender Sender, interval time.Duration) *Broadcaster {
	return &Broadcaster{sender: sender, interval: interval}
}

// Send delivers text to every user in order. Failures are logged and counted, never returned;
// cancelling ctx does not stop a broadcast that has started.
func (b *Broadcaster) Send(ctx context.Context, users []model.User, text string) BroadcastResult {
	ctx = context.WithoutCancel(ctx)
	limiter := b.newLimiter()

	var res BroadcastResult
	for _, user := range users {
		if err := limiter.Wait(ctx); err != nil {
			log.Printf("[warn] broadcast pacing: %v", err)
		}
		err := b.sender.SendText(ctx, user.ID, text)
		switch {
		case err == nil:
			res.Sent++
		case errors.Is(err, ErrRecipientUnreachable):
			log.Printf("[warn] user %d blocked the bot", user.ID)
			res.Failed++
		default:
			log.Printf("send broadcast to %d: %v", user.ID, err)
			res.Failed++
		}
	}
	return res
}

func (b *Broadcaster) newLimiter() *rate.Limiter {
	if b.interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(b.interval), 1)
}
