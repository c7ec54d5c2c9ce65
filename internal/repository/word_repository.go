package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"word-mixer/internal/model"
)

// WordRepository keeps the learned vocabulary.
type WordRepository struct {
	db *gorm.DB
}

func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{db: db}
}

// Ingest stores every word that is not known yet. Known words are left untouched.
func (r *WordRepository) Ingest(ctx context.Context, words []string) error {
	seen := make(map[string]struct{}, len(words))
	rows := make([]model.Word, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		rows = append(rows, model.Word{Word: w})
	}
	if len(rows) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("ingest words: %w", err)
	}
	return nil
}

// SampleRandom returns up to n distinct words in random order.
func (r *WordRepository) SampleRandom(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	var words []string
	if err := r.db.WithContext(ctx).Model(&model.Word{}).
		Order("RANDOM()").
		Limit(n).
		Pluck("word", &words).Error; err != nil {
		return nil, fmt.Errorf("sample words: %w", err)
	}
	return words, nil
}

func (r *WordRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Word{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return total, nil
}
