package protocol

import (
	"encoding/json"
	"testing"

	"github.com/TangilJ/litama/internal/game"
	"github.com/TangilJ/litama/internal/match"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestErrorMessageShape(t *testing.T) {
	got := marshal(t, ErrorMessage{MessageType: "error", MatchID: "m1", Error: "Match not found", Command: "join"})
	want := `{"messageType":"error","matchId":"m1","error":"Match not found","command":"join"}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestSeatAndAckMessageShapes(t *testing.T) {
	got := marshal(t, SeatMessage{MessageType: "create", MatchID: "m1", Token: "tok", Index: 0})
	want := `{"messageType":"create","matchId":"m1","token":"tok","index":0}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	got = marshal(t, AckMessage{MessageType: "move", MatchID: "m1"})
	want = `{"messageType":"move","matchId":"m1"}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestWaitingStateMessage(t *testing.T) {
	m := &match.Match{
		ID:        "m1",
		State:     game.WaitingForPlayer,
		Usernames: match.Usernames{Blue: "alice", Red: "alice"},
	}
	payload, err := EncodeState(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"messageType":"state","matchId":"m1","gameState":"waiting for player","usernames":{"blue":"alice","red":"alice"}}`
	if string(payload) != want {
		t.Errorf("got %s\nwant %s", payload, want)
	}
}

func TestFullStateMessage(t *testing.T) {
	cards := match.Cards{Blue: []string{"tiger", "crab"}, Red: []string{"ox", "horse"}, Side: "boar"}
	m := &match.Match{
		ID:            "m1",
		State:         game.InProgress,
		Usernames:     match.Usernames{Blue: "alice", Red: "bob"},
		Indices:       match.Indices{Blue: 0, Red: 1},
		CurrentTurn:   game.Red,
		Board:         game.InitialBoard(),
		Cards:         cards,
		StartingCards: cards,
		Moves:         []string{},
		Winner:        game.None,
	}
	payload, err := EncodeState(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"messageType":"state","matchId":"m1",` +
		`"usernames":{"blue":"alice","red":"bob"},` +
		`"indices":{"blue":0,"red":1},` +
		`"currentTurn":"red",` +
		`"cards":{"blue":["tiger","crab"],"red":["ox","horse"],"side":"boar"},` +
		`"startingCards":{"blue":["tiger","crab"],"red":["ox","horse"],"side":"boar"},` +
		`"moves":[],` +
		`"board":"1121100000000000000033433",` +
		`"gameState":"in progress",` +
		`"winner":"none"}`
	if string(payload) != want {
		t.Errorf("got %s\nwant %s", payload, want)
	}
}
