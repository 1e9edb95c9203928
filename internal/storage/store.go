package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TangilJ/litama/internal/match"
)

// Store persists matches in postgres through gorm.
type Store struct {
	db *gorm.DB
}

// NewStore creates a match store from a gorm DB.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Insert writes a freshly created match.
func (s *Store) Insert(ctx context.Context, m *match.Match) error {
	rec, err := toRecord(m)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// Get loads a match snapshot by id.
func (s *Store) Get(ctx context.Context, id string) (*match.Match, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, match.ErrNotFound
	}
	var rec MatchRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, match.ErrNotFound
		}
		return nil, err
	}
	return fromRecord(&rec)
}

// Update writes every mutable field of the match in one statement. The
// coordinator holds the per-match lock for the duration, so the row is never
// written concurrently.
func (s *Store) Update(ctx context.Context, m *match.Match) error {
	rec, err := toRecord(m)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Omit("created_at").Save(&rec).Error
}
