package service

import (
	"context"
	"log"
)

// Stats is a point-in-time size of both stores.
type Stats struct {
	Words int64
	Users int64
}

// StatsService reports store sizes for the periodic log job.
type StatsService struct {
	words WordStore
	users UserDirectory
}

func NewStatsService(words WordStore, users UserDirectory) *StatsService {
	return &StatsService{words: words, users: users}
}

func (s *StatsService) Snapshot(ctx context.Context) (Stats, error) {
	words, err := s.words.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Words: words, Users: users}, nil
}

// LogSnapshot writes the current stats to the log.
func (s *StatsService) LogSnapshot(ctx context.Context) {
	stats, err := s.Snapshot(ctx)
	if err != nil {
		log.Printf("stats: %v", err)
		return
	}
	log.Printf("[info] vocabulary=%d users=%d", stats.Words, stats.Users)
}
