package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/TangilJ/litama/internal/game"
	"github.com/TangilJ/litama/internal/match"
)

// MatchRecord is the persisted row for one match. The board is stored in its
// canonical 25-character string form; card hands and the move log are JSON
// columns.
type MatchRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phase         string
	UsernameBlue  string
	UsernameRed   string
	IndexBlue     int
	IndexRed      int
	TokenBlue     string
	TokenRed      string
	CurrentTurn   string
	Board         string
	Cards         match.Cards `gorm:"serializer:json"`
	StartingCards match.Cards `gorm:"serializer:json"`
	Moves         []string    `gorm:"serializer:json"`
	Winner        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toRecord(m *match.Match) (MatchRecord, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return MatchRecord{}, err
	}
	return MatchRecord{
		ID:            id,
		Phase:         m.State.String(),
		UsernameBlue:  m.Usernames.Blue,
		UsernameRed:   m.Usernames.Red,
		IndexBlue:     m.Indices.Blue,
		IndexRed:      m.Indices.Red,
		TokenBlue:     m.TokenBlue,
		TokenRed:      m.TokenRed,
		CurrentTurn:   m.CurrentTurn.String(),
		Board:         m.Board.Serialize(),
		Cards:         m.Cards,
		StartingCards: m.StartingCards,
		Moves:         m.Moves,
		Winner:        m.Winner.String(),
	}, nil
}

func fromRecord(rec *MatchRecord) (*match.Match, error) {
	board, err := game.DeserializeBoard(rec.Board)
	if err != nil {
		return nil, err
	}
	return &match.Match{
		ID:            rec.ID.String(),
		State:         game.ParseGameState(rec.Phase),
		Usernames:     match.Usernames{Blue: rec.UsernameBlue, Red: rec.UsernameRed},
		Indices:       match.Indices{Blue: rec.IndexBlue, Red: rec.IndexRed},
		TokenBlue:     rec.TokenBlue,
		TokenRed:      rec.TokenRed,
		CurrentTurn:   game.ParsePlayer(rec.CurrentTurn),
		Board:         board,
		Cards:         rec.Cards,
		StartingCards: rec.StartingCards,
		Moves:         rec.Moves,
		Winner:        game.ParsePlayer(rec.Winner),
	}, nil
}
