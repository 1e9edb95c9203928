package game

import "math/rand/v2"

// GenerateMoves lists every legal destination for the piece at piecePos using
// any of the given cards. Cards are printed from one canonical orientation, so
// offsets are mirrored per side: blue mirrors the x axis, red mirrors the y
// axis. A destination is legal if it stays on the grid and does not hold a
// piece of the mover's own color; capturing the opponent is always allowed.
func GenerateMoves(piecePos Pos, cards []Card, b Board) []Move {
	piece := b[piecePos.Y][piecePos.X]
	var moves []Move
	for _, card := range cards {
		for _, offset := range card.Moves {
			dx, dy := offset.X, offset.Y
			if piece.Color == Blue {
				dx = -dx
			}
			if piece.Color == Red {
				dy = -dy
			}
			x, y := piecePos.X+dx, piecePos.Y+dy
			if x < 0 || x > 4 || y < 0 || y > 4 {
				continue
			}
			if b[y][x].Color == piece.Color {
				continue
			}
			moves = append(moves, Move{To: Pos{X: x, Y: y}, Card: card.Name})
		}
	}
	return moves
}

// ApplyMove moves the piece at from to to using card, provided the move is a
// member of GenerateMoves(from, cards, b). The input board is never mutated;
// on success the returned board differs only at the origin (now empty) and
// destination (now holding the moved piece).
func ApplyMove(from, to Pos, card Card, cards []Card, b Board) (Board, bool) {
	legal := false
	for _, m := range GenerateMoves(from, cards, b) {
		if m.To == to && m.Card == card.Name {
			legal = true
			break
		}
	}
	if !legal {
		return Board{}, false
	}
	next := b
	next[to.Y][to.X] = next[from.Y][from.X]
	next[from.Y][from.X] = Piece{}
	return next, true
}

// CheckWinCondition reports the winner, or None if play continues. The order
// is fixed and observable: master capture is checked before a shrine
// occupation, blue's master before red's shrine.
func CheckWinCondition(b Board) Player {
	blueMaster, redMaster := false, false
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p := b[y][x]
			if p.IsMaster && p.Color == Blue {
				blueMaster = true
			}
			if p.IsMaster && p.Color == Red {
				redMaster = true
			}
		}
	}
	if !blueMaster {
		return Red
	}
	if !redMaster {
		return Blue
	}
	if p := b[BlueShrine.Y][BlueShrine.X]; p.IsMaster && p.Color == Red {
		return Red
	}
	if p := b[RedShrine.Y][RedShrine.X]; p.IsMaster && p.Color == Blue {
		return Blue
	}
	return None
}

// Deal draws five distinct cards from the catalog, split 2/2/1 between blue,
// red and the side slot.
func Deal() (blue, red []Card, side Card) {
	perm := rand.Perm(len(Cards))
	blue = []Card{Cards[perm[0]], Cards[perm[1]]}
	red = []Card{Cards[perm[2]], Cards[perm[3]]}
	side = Cards[perm[4]]
	return blue, red, side
}
