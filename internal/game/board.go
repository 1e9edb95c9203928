package game

import "fmt"

// Board is the 5x5 grid, indexed [y][x]. It is a value type: assignment copies
// the whole grid, so callers may keep old boards across ApplyMove.
type Board [5][5]Piece

// Shrine cells. A master ending its move on the enemy shrine wins the match.
var (
	BlueShrine = Pos{X: 2, Y: 0}
	RedShrine  = Pos{X: 2, Y: 4}
)

// InitialBoard returns the standard opening layout: a full back row for each
// side with the center piece flagged as master.
func InitialBoard() Board {
	var b Board
	for x := 0; x < 5; x++ {
		b[0][x] = Piece{Color: Blue}
		b[4][x] = Piece{Color: Red}
	}
	b[0][2].IsMaster = true
	b[4][2].IsMaster = true
	return b
}

// Serialize renders the board as the canonical 25-character string, row-major:
// 0 empty, 1 blue, 2 blue master, 3 red, 4 red master.
func (b Board) Serialize() string {
	buf := make([]byte, 0, 25)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p := b[y][x]
			switch {
			case p.Color == Blue && p.IsMaster:
				buf = append(buf, '2')
			case p.Color == Blue:
				buf = append(buf, '1')
			case p.Color == Red && p.IsMaster:
				buf = append(buf, '4')
			case p.Color == Red:
				buf = append(buf, '3')
			default:
				buf = append(buf, '0')
			}
		}
	}
	return string(buf)
}

// DeserializeBoard parses the 25-character board string produced by Serialize.
func DeserializeBoard(s string) (Board, error) {
	var b Board
	if len(s) != 25 {
		return b, fmt.Errorf("board string must be 25 characters, got %d", len(s))
	}
	for i := 0; i < 25; i++ {
		x, y := i%5, i/5
		switch s[i] {
		case '0':
		case '1':
			b[y][x] = Piece{Color: Blue}
		case '2':
			b[y][x] = Piece{Color: Blue, IsMaster: true}
		case '3':
			b[y][x] = Piece{Color: Red}
		case '4':
			b[y][x] = Piece{Color: Red, IsMaster: true}
		default:
			return Board{}, fmt.Errorf("invalid board cell %q", s[i])
		}
	}
	return b, nil
}

// PosFromNotation parses a two-character cell like "a1". Columns a..e run
// right to left, rows 1..5 bottom up from blue's back row.
func PosFromNotation(s string) (Pos, error) {
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("notation must be 2 characters, got %q", s)
	}
	if s[0] < 'a' || s[0] > 'e' || s[1] < '1' || s[1] > '5' {
		return Pos{}, fmt.Errorf("invalid notation %q", s)
	}
	return Pos{X: 4 - int(s[0]-'a'), Y: int(s[1] - '1')}, nil
}
