package service

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"
)

const (
	minVocabulary = 5
	minReplyWords = 3
	maxReplyWords = 7
	maxEchoWords  = 2
)

// ReplyService mixes words from the incoming message with random words from the vocabulary.
type ReplyService struct {
	words WordStore
	rnd   Random
}

// NewReplyService builds a sampler; a nil rnd falls back to the global math/rand/v2 source.
func NewReplyService(words WordStore, rnd Random) *ReplyService {
	if rnd == nil {
		rnd = globalRandom{}
	}
	return &ReplyService{words: words, rnd: rnd}
}

// Generate returns 3..7 words, one or two of them taken from seedWords when there are any.
// It returns nothing while the vocabulary holds fewer than five words.
func (s *ReplyService) Generate(ctx context.Context, seedWords []string) ([]string, error) {
	total, err := s.words.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total < minVocabulary {
		return nil, nil
	}

	target := minReplyWords + s.rnd.IntN(maxReplyWords-minReplyWords+1)
	reply := make([]string, 0, target)

	if len(seedWords) > 0 {
		seeds := slices.Clone(seedWords)
		s.rnd.Shuffle(len(seeds), func(i, j int) { seeds[i], seeds[j] = seeds[j], seeds[i] })
		echo := min(1+s.rnd.IntN(maxEchoWords), len(seeds))
		reply = append(reply, seeds[:echo]...)
	}

	// Random words may repeat echoed ones.
	if fill := target - len(reply); fill > 0 {
		random, err := s.words.SampleRandom(ctx, fill)
		if err != nil {
			return nil, err
		}
		reply = append(reply, random...)
	}

	s.rnd.Shuffle(len(reply), func(i, j int) { reply[i], reply[j] = reply[j], reply[i] })
	return reply, nil
}

// ComposeReply turns sampled words into a sentence. It reports false when there are too few words.
func ComposeReply(words []string) (string, bool) {
	if len(words) < minReplyWords {
		return "", false
	}
	return capitalize(strings.Join(words, " ")) + ".", true
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
