package match

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/TangilJ/litama/internal/game"
	"github.com/TangilJ/litama/internal/logging"
	"github.com/TangilJ/litama/pkg/utils"
)

// tokenBytes is the entropy of a seat token; hex-encoded it doubles in length.
const tokenBytes = 32

// SeatResult is what a player gets back from claiming a seat: the match, the
// bearer token authenticating their future moves, and their join index.
type SeatResult struct {
	MatchID string
	Token   string
	Index   int
}

// Coordinator owns all match mutation. Join and Move on the same match id are
// mutually exclusive; operations on different ids never contend.
type Coordinator struct {
	store  Store
	notify Broadcaster

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCoordinator wires a coordinator to its match store and broadcaster.
func NewCoordinator(store Store, notify Broadcaster) *Coordinator {
	return &Coordinator{
		store:  store,
		notify: notify,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing mutations of one match id.
func (c *Coordinator) lockFor(id string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	return l
}

// Create starts a new match with the creator on a uniformly random side. The
// open seat keeps an empty token as the "seat open" sentinel, and both seats
// carry the creator's username until the second player joins.
func (c *Coordinator) Create(ctx context.Context, username string) (*SeatResult, error) {
	m := &Match{
		ID:        uuid.NewString(),
		State:     game.WaitingForPlayer,
		Usernames: Usernames{Blue: username, Red: username},
	}
	token := utils.RandomHex(tokenBytes)
	if rand.IntN(2) == 0 {
		m.TokenBlue = token
	} else {
		m.TokenRed = token
	}
	if err := c.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	logging.Debugf("created match %s for %q", m.ID, username)
	return &SeatResult{MatchID: m.ID, Token: token, Index: 0}, nil
}

// CreateCustom starts a match with a creator-chosen hand instead of a random
// deal, and optionally a chosen color ("blue", "red", or "" for random). The
// five cards fill blue's hand, red's hand and the side slot in order; they are
// honored by Join instead of a fresh deal.
func (c *Coordinator) CreateCustom(ctx context.Context, color string, cardNames []string, username string) (*SeatResult, error) {
	const cmd = "create_custom"
	if len(cardNames) != 5 {
		return nil, newError(DuplicateOrUnknownCard, cmd, "", "Exactly 5 cards must be given")
	}
	seen := make(map[string]bool, 5)
	for _, name := range cardNames {
		if _, ok := game.CardByName(name); !ok {
			return nil, newError(DuplicateOrUnknownCard, cmd, "", "Invalid card name '"+name+"'")
		}
		if seen[name] {
			return nil, newError(DuplicateOrUnknownCard, cmd, "", "Duplicate card '"+name+"'")
		}
		seen[name] = true
	}

	side := game.ParsePlayer(color)
	if side == game.None {
		if rand.IntN(2) == 0 {
			side = game.Blue
		} else {
			side = game.Red
		}
	}

	m := &Match{
		ID:        uuid.NewString(),
		State:     game.WaitingForPlayer,
		Usernames: Usernames{Blue: username, Red: username},
		Cards: Cards{
			Blue: []string{cardNames[0], cardNames[1]},
			Red:  []string{cardNames[2], cardNames[3]},
			Side: cardNames[4],
		},
	}
	token := utils.RandomHex(tokenBytes)
	if side == game.Blue {
		m.TokenBlue = token
	} else {
		m.TokenRed = token
	}
	if err := c.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	logging.Debugf("created custom match %s for %q", m.ID, username)
	return &SeatResult{MatchID: m.ID, Token: token, Index: 0}, nil
}

// Join fills the open seat, deals the hand (unless the creator fixed one),
// lays out the starting board and starts play. The first turn belongs to the
// side matching the side card's color. The joiner's connection is subscribed
// before the state broadcast so it receives the opening state.
func (c *Coordinator) Join(ctx context.Context, matchID, username string, sub Subscriber) (*SeatResult, error) {
	const cmd = "join"
	if err := checkMatchID(cmd, matchID); err != nil {
		return nil, err
	}

	l := c.lockFor(matchID)
	l.Lock()
	defer l.Unlock()

	m, err := c.load(ctx, cmd, matchID)
	if err != nil {
		return nil, err
	}
	if m.State != game.WaitingForPlayer {
		return nil, newError(IllegalPhaseTransition, cmd, matchID, "Not allowed to join")
	}

	color := game.Blue
	if m.TokenRed == "" {
		color = game.Red
	}
	token := utils.RandomHex(tokenBytes)

	if len(m.Cards.Blue) == 0 {
		blue, red, side := game.Deal()
		m.Cards = Cards{
			Blue: []string{blue[0].Name, blue[1].Name},
			Red:  []string{red[0].Name, red[1].Name},
			Side: side.Name,
		}
	}
	sideCard, _ := game.CardByName(m.Cards.Side)

	if color == game.Blue {
		m.TokenBlue = token
		m.Usernames.Blue = username
		m.Indices.Blue = 1
	} else {
		m.TokenRed = token
		m.Usernames.Red = username
		m.Indices.Red = 1
	}
	m.State = game.InProgress
	m.Board = game.InitialBoard()
	m.Moves = []string{}
	m.CurrentTurn = sideCard.Color
	m.StartingCards = m.Cards.clone()
	m.Winner = game.None

	if err := c.store.Update(ctx, m); err != nil {
		return nil, err
	}
	logging.Debugf("match %s joined by %q as %s", matchID, username, color)

	if sub != nil {
		c.notify.Subscribe(matchID, sub)
	}
	c.notify.MatchChanged(m)
	return &SeatResult{MatchID: matchID, Token: token, Index: 1}, nil
}

// Move validates and applies one move. Board, hand, turn, history, phase and
// winner commit together under the match lock; a rejected move changes
// nothing. On success the new state is broadcast to all subscribers.
func (c *Coordinator) Move(ctx context.Context, matchID, token, cardName, notation string) error {
	const cmd = "move"
	if err := checkMatchID(cmd, matchID); err != nil {
		return err
	}

	l := c.lockFor(matchID)
	l.Lock()
	defer l.Unlock()

	m, err := c.load(ctx, cmd, matchID)
	if err != nil {
		return err
	}
	if m.State == game.Ended {
		return newError(IllegalPhaseTransition, cmd, matchID, "Game ended")
	}

	color := authenticate(token, m)
	if color == game.None {
		return newError(Unauthenticated, cmd, matchID, "Token is incorrect")
	}

	card, cardOK := game.CardByName(cardName)
	from, fromErr := parseHalf(notation, 0)
	to, toErr := parseHalf(notation, 2)
	if !cardOK || fromErr != nil || toErr != nil {
		return newError(MalformedCommand, cmd, matchID, "'move' or 'card' not given properly")
	}

	if m.CurrentTurn != color {
		return newError(OutOfTurn, cmd, matchID, "Cannot move when it is not your turn")
	}
	if m.Board[from.Y][from.X].Color != color {
		return newError(IllegalMove, cmd, matchID, "Cannot move opponent's pieces or empty squares")
	}

	held := m.Cards.Held(color)
	heldCards, _ := game.CardsByName(held)
	newBoard, ok := game.ApplyMove(from, to, card, heldCards, m.Board)
	if !ok {
		return newError(IllegalMove, cmd, matchID, "Invalid move")
	}

	// Rotate the used card out to the side slot.
	rotated := append([]string(nil), held...)
	swapped := false
	for i, name := range rotated {
		if name == cardName {
			rotated[i] = m.Cards.Side
			swapped = true
			break
		}
	}
	if !swapped {
		return newError(IllegalMove, cmd, matchID, "Invalid move")
	}

	m.Board = newBoard
	m.Moves = append(m.Moves, cardName+":"+notation)
	if color == game.Blue {
		m.Cards.Blue = rotated
	} else {
		m.Cards.Red = rotated
	}
	m.Cards.Side = cardName
	m.CurrentTurn = color.Opponent()
	if winner := game.CheckWinCondition(newBoard); winner != game.None {
		m.Winner = winner
		m.State = game.Ended
	}

	if err := c.store.Update(ctx, m); err != nil {
		return err
	}
	logging.Debugf("match %s: %s played %s (%s)", matchID, color, cardName, notation)

	c.notify.MatchChanged(m)
	return nil
}

// Spectate subscribes a connection to a match's live updates and rebroadcasts
// the current state. Ended matches are still readable through State but no
// longer accept spectators.
func (c *Coordinator) Spectate(ctx context.Context, matchID string, sub Subscriber) error {
	const cmd = "spectate"
	if err := checkMatchID(cmd, matchID); err != nil {
		return err
	}
	m, err := c.load(ctx, cmd, matchID)
	if err != nil {
		return err
	}
	if m.State == game.Ended {
		return newError(IllegalPhaseTransition, cmd, matchID, "Game ended")
	}
	if sub != nil {
		c.notify.Subscribe(matchID, sub)
	}
	c.notify.MatchChanged(m)
	return nil
}

// State returns an independent snapshot of the match, readable concurrently
// with mutations.
func (c *Coordinator) State(ctx context.Context, matchID string) (*Match, error) {
	const cmd = "state"
	if err := checkMatchID(cmd, matchID); err != nil {
		return nil, err
	}
	return c.load(ctx, cmd, matchID)
}

func (c *Coordinator) load(ctx context.Context, cmd, matchID string) (*Match, error) {
	m, err := c.store.Get(ctx, matchID)
	if err == ErrNotFound {
		return nil, newError(NotFound, cmd, matchID, "Match not found")
	}
	return m, err
}

func checkMatchID(cmd, matchID string) error {
	if _, err := uuid.Parse(matchID); err != nil {
		return newError(MalformedIdentifier, cmd, matchID, "matchId was in an incorrect format")
	}
	return nil
}

// authenticate resolves a bearer token to a side. Both stored tokens are
// compared in constant time regardless of which one matches; the empty string
// is the open-seat sentinel and never authenticates.
func authenticate(token string, m *Match) game.Player {
	blue := m.TokenBlue != "" && utils.SecureEqual(token, m.TokenBlue)
	red := m.TokenRed != "" && utils.SecureEqual(token, m.TokenRed)
	switch {
	case blue:
		return game.Blue
	case red:
		return game.Red
	default:
		return game.None
	}
}

// parseHalf parses one endpoint of a four-character move like "a1b2".
func parseHalf(notation string, offset int) (game.Pos, error) {
	if len(notation) != 4 {
		return game.Pos{}, &Error{Code: MalformedCommand, Reason: "bad notation"}
	}
	return game.PosFromNotation(notation[offset : offset+2])
}
