package game

// Player identifies a side, or no side for empty cells and undecided winners.
type Player int

const (
	None Player = iota
	Blue
	Red
)

// String returns the wire representation of the player.
func (p Player) String() string {
	switch p {
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// Opponent returns the other side. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return None
	}
}

// ParsePlayer converts a wire player string back to a Player.
func ParsePlayer(s string) Player {
	switch s {
	case "blue":
		return Blue
	case "red":
		return Red
	default:
		return None
	}
}

// GameState is the lifecycle phase of a match. Progression is strictly one-way:
// WaitingForPlayer -> InProgress -> Ended.
type GameState int

const (
	WaitingForPlayer GameState = iota
	InProgress
	Ended
)

// String returns the wire representation of the game state.
func (g GameState) String() string {
	switch g {
	case InProgress:
		return "in progress"
	case Ended:
		return "ended"
	default:
		return "waiting for player"
	}
}

// ParseGameState converts a wire game state string back to a GameState.
func ParseGameState(s string) GameState {
	switch s {
	case "in progress":
		return InProgress
	case "ended":
		return Ended
	default:
		return WaitingForPlayer
	}
}

// Pos is a board coordinate, 0..4 on each axis. On cards the same type holds
// offsets relative to the moving piece.
type Pos struct {
	X int
	Y int
}

// Piece is the content of one board cell.
type Piece struct {
	IsMaster bool
	Color    Player
}

// Card is one movement card from the fixed catalog. Color is only used to pick
// the first turn when the card is dealt as the side card; it plays identically
// for both sides. Moves are offsets from the mover at (0, 0), in the card's
// printed orientation.
type Card struct {
	Name  string
	Color Player
	Moves []Pos
}

// Move is one legal destination together with the name of the card that
// reaches it.
type Move struct {
	To   Pos
	Card string
}
