// Package protocol defines the wire contract: the line-command grammar clients
// send and the compact JSON messages the server replies and broadcasts with.
package protocol

import (
	"encoding/json"

	"github.com/TangilJ/litama/internal/game"
	"github.com/TangilJ/litama/internal/match"
)

// ErrorMessage reports a rejected command back to its sender only.
type ErrorMessage struct {
	MessageType string `json:"messageType"`
	MatchID     string `json:"matchId"`
	Error       string `json:"error"`
	Command     string `json:"command"`
}

// SeatMessage acknowledges create, create_custom and join: the seat's bearer
// token and join index.
type SeatMessage struct {
	MessageType string `json:"messageType"`
	MatchID     string `json:"matchId"`
	Token       string `json:"token"`
	Index       int    `json:"index"`
}

// AckMessage acknowledges move and spectate.
type AckMessage struct {
	MessageType string `json:"messageType"`
	MatchID     string `json:"matchId"`
}

// WaitingStateMessage is the state snapshot of a match that has no second
// player yet: board and cards are not meaningful, only identity is exposed.
type WaitingStateMessage struct {
	MessageType string          `json:"messageType"`
	MatchID     string          `json:"matchId"`
	GameState   string          `json:"gameState"`
	Usernames   match.Usernames `json:"usernames"`
}

// StateMessage is the full state snapshot of an active or ended match.
type StateMessage struct {
	MessageType   string          `json:"messageType"`
	MatchID       string          `json:"matchId"`
	Usernames     match.Usernames `json:"usernames"`
	Indices       match.Indices   `json:"indices"`
	CurrentTurn   string          `json:"currentTurn"`
	Cards         match.Cards     `json:"cards"`
	StartingCards match.Cards     `json:"startingCards"`
	Moves         []string        `json:"moves"`
	Board         string          `json:"board"`
	GameState     string          `json:"gameState"`
	Winner        string          `json:"winner"`
}

// NewStateMessage builds the state snapshot for a match, picking the waiting
// or full shape by phase.
func NewStateMessage(m *match.Match) any {
	if m.State == game.WaitingForPlayer {
		return WaitingStateMessage{
			MessageType: "state",
			MatchID:     m.ID,
			GameState:   m.State.String(),
			Usernames:   m.Usernames,
		}
	}
	return StateMessage{
		MessageType:   "state",
		MatchID:       m.ID,
		Usernames:     m.Usernames,
		Indices:       m.Indices,
		CurrentTurn:   m.CurrentTurn.String(),
		Cards:         m.Cards,
		StartingCards: m.StartingCards,
		Moves:         m.Moves,
		Board:         m.Board.Serialize(),
		GameState:     m.State.String(),
		Winner:        m.Winner.String(),
	}
}

// EncodeState serializes a match's state message.
func EncodeState(m *match.Match) ([]byte, error) {
	return json.Marshal(NewStateMessage(m))
}
