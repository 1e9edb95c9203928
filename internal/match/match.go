package match

import (
	"slices"

	"github.com/TangilJ/litama/internal/game"
)

// Usernames holds each seat's display name. While the match is waiting for a
// second player both seats carry the creator's name, so spectators can see who
// created the match without revealing which color is still open.
type Usernames struct {
	Blue string `json:"blue"`
	Red  string `json:"red"`
}

// Indices holds each seat's join index: 0 for the creator, 1 for the joiner.
type Indices struct {
	Blue int `json:"blue"`
	Red  int `json:"red"`
}

// Cards is a match's card hand: two cards per player plus the side card that
// rotates in for whichever card was just played.
type Cards struct {
	Blue []string `json:"blue"`
	Red  []string `json:"red"`
	Side string   `json:"side"`
}

// Held returns the named side's cards.
func (c Cards) Held(p game.Player) []string {
	if p == game.Red {
		return c.Red
	}
	return c.Blue
}

func (c Cards) clone() Cards {
	c.Blue = slices.Clone(c.Blue)
	c.Red = slices.Clone(c.Red)
	return c
}

// Match is the authoritative record for one game. The coordinator owns every
// stored copy; nothing outside this package mutates one directly.
type Match struct {
	ID            string
	State         game.GameState
	Usernames     Usernames
	Indices       Indices
	TokenBlue     string
	TokenRed      string
	CurrentTurn   game.Player
	Board         game.Board
	Cards         Cards
	StartingCards Cards
	Moves         []string
	Winner        game.Player
}

// Clone returns a deep copy. Stores hand out clones so readers can never
// observe a half-committed mutation.
func (m *Match) Clone() *Match {
	c := *m
	c.Cards = m.Cards.clone()
	c.StartingCards = m.StartingCards.clone()
	c.Moves = slices.Clone(m.Moves)
	return &c
}
