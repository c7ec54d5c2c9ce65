package service

import (
	"context"
	"sort"
	"sync"

	"word-mixer/internal/model"
)

type fakeWordStore struct {
	mu        sync.Mutex
	words     map[string]struct{}
	err       error
	requested []int
}

func newFakeWordStore(words ...string) *fakeWordStore {
	s := &fakeWordStore{words: make(map[string]struct{})}
	for _, w := range words {
		s.words[w] = struct{}{}
	}
	return s
}

func (s *fakeWordStore) Ingest(_ context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, w := range words {
		s.words[w] = struct{}{}
	}
	return nil
}

func (s *fakeWordStore) SampleRandom(_ context.Context, n int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.requested = append(s.requested, n)
	all := make([]string, 0, len(s.words))
	for w := range s.words {
		all = append(all, w)
	}
	sort.Strings(all)
	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

func (s *fakeWordStore) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.words)), nil
}

type fakeDirectory struct {
	mu    sync.Mutex
	users []model.User
	err   error
}

func (d *fakeDirectory) Upsert(_ context.Context, user model.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	for i := range d.users {
		if d.users[i].ID == user.ID {
			d.users[i].Username = user.Username
			if user.LastMessage != nil {
				d.users[i].LastMessage = user.LastMessage
				d.users[i].LastMessageTime = user.LastMessageTime
			}
			return nil
		}
	}
	d.users = append(d.users, user)
	return nil
}

func (d *fakeDirectory) ListAll(context.Context) ([]model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	return append([]model.User(nil), d.users...), nil
}

func (d *fakeDirectory) Count(context.Context) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return 0, d.err
	}
	return int64(len(d.users)), nil
}

// scriptedRandom returns the queued IntN values and never reorders on Shuffle.
type scriptedRandom struct {
	values []int
	calls  int
}

func (r *scriptedRandom) IntN(n int) int {
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func (r *scriptedRandom) Shuffle(int, func(i, j int)) {}

type fakeSender struct {
	mu   sync.Mutex
	errs map[int64]error
	sent []int64
	text []string
}

func (s *fakeSender) SendText(_ context.Context, chatID int64, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[chatID]; err != nil {
		return err
	}
	s.sent = append(s.sent, chatID)
	s.text = append(s.text, text)
	return nil
}
