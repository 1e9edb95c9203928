package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/TangilJ/litama/internal/game"
	"github.com/TangilJ/litama/internal/match"
)

func testMatch() *match.Match {
	return &match.Match{
		ID:          uuid.NewString(),
		State:       game.InProgress,
		Usernames:   match.Usernames{Blue: "alice", Red: "bob"},
		Indices:     match.Indices{Red: 1},
		TokenBlue:   "bt",
		TokenRed:    "rt",
		CurrentTurn: game.Blue,
		Board:       game.InitialBoard(),
		Cards:       match.Cards{Blue: []string{"tiger", "crab"}, Red: []string{"ox", "horse"}, Side: "boar"},
		Moves:       []string{"horse:e5e4"},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	m := testMatch()

	if err := s.Insert(ctx, m); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := s.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != m.ID || got.Cards.Side != "boar" || len(got.Moves) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), uuid.NewString()); err != match.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := s.Update(context.Background(), testMatch()); err != match.ErrNotFound {
		t.Fatalf("update missing: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreSnapshotsAreIsolated(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	m := testMatch()
	if err := s.Insert(ctx, m); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Mutating the caller's copy or a returned snapshot must not leak into
	// the stored match.
	m.Cards.Blue[0] = "mutated"
	m.Moves = append(m.Moves, "extra")

	first, _ := s.Get(ctx, m.ID)
	first.Cards.Blue[1] = "mutated"
	first.Moves[0] = "mutated"

	fresh, _ := s.Get(ctx, m.ID)
	if fresh.Cards.Blue[0] != "tiger" || fresh.Cards.Blue[1] != "crab" {
		t.Errorf("stored cards mutated: %v", fresh.Cards.Blue)
	}
	if len(fresh.Moves) != 1 || fresh.Moves[0] != "horse:e5e4" {
		t.Errorf("stored moves mutated: %v", fresh.Moves)
	}
}

func TestMemoryStoreUpdateReplacesWholeMatch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	m := testMatch()
	if err := s.Insert(ctx, m); err != nil {
		t.Fatalf("insert: %v", err)
	}

	m.State = game.Ended
	m.Winner = game.Blue
	m.Moves = append(m.Moves, "tiger:c1c3")
	if err := s.Update(ctx, m); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := s.Get(ctx, m.ID)
	if got.State != game.Ended || got.Winner != game.Blue || len(got.Moves) != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestRecordConversionRoundTrip(t *testing.T) {
	m := testMatch()
	m.StartingCards = m.Cards

	rec, err := toRecord(m)
	if err != nil {
		t.Fatalf("toRecord: %v", err)
	}
	back, err := fromRecord(&rec)
	if err != nil {
		t.Fatalf("fromRecord: %v", err)
	}
	if back.ID != m.ID || back.State != m.State || back.Board != m.Board {
		t.Fatalf("round trip changed identity fields: %+v", back)
	}
	if back.CurrentTurn != m.CurrentTurn || back.Winner != m.Winner {
		t.Fatalf("round trip changed turn/winner: %+v", back)
	}
	if back.Cards.Side != m.Cards.Side || back.TokenRed != m.TokenRed {
		t.Fatalf("round trip changed hand/tokens: %+v", back)
	}
}

func TestToRecordRejectsBadID(t *testing.T) {
	m := testMatch()
	m.ID = "not-a-uuid"
	if _, err := toRecord(m); err == nil {
		t.Fatal("expected error for malformed id")
	}
}
