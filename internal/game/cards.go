package game

// The 16 base movement cards. Offsets are in the card's printed orientation;
// GenerateMoves mirrors them per side.
var Cards = []Card{
	{Name: "rabbit", Color: Blue, Moves: []Pos{{-1, -1}, {1, 1}, {2, 0}}},
	{Name: "monkey", Color: Blue, Moves: []Pos{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}},
	{Name: "boar", Color: Red, Moves: []Pos{{1, 0}, {-1, 0}, {0, 1}}},
	{Name: "goose", Color: Blue, Moves: []Pos{{-1, 0}, {-1, 1}, {1, 0}, {1, -1}}},
	{Name: "cobra", Color: Red, Moves: []Pos{{-1, 0}, {1, 1}, {1, -1}}},
	{Name: "crab", Color: Blue, Moves: []Pos{{0, 1}, {-2, 0}, {2, 0}}},
	{Name: "horse", Color: Red, Moves: []Pos{{0, 1}, {-1, 0}, {0, -1}}},
	{Name: "dragon", Color: Red, Moves: []Pos{{-1, -1}, {1, -1}, {-2, 1}, {2, 1}}},
	{Name: "rooster", Color: Red, Moves: []Pos{{-1, 0}, {1, 0}, {1, 1}, {-1, -1}}},
	{Name: "crane", Color: Blue, Moves: []Pos{{-1, -1}, {1, -1}, {0, 1}}},
	{Name: "elephant", Color: Red, Moves: []Pos{{-1, 0}, {1, 0}, {-1, 1}, {1, 1}}},
	{Name: "mantis", Color: Red, Moves: []Pos{{-1, 1}, {1, 1}, {0, -1}}},
	{Name: "tiger", Color: Blue, Moves: []Pos{{0, 2}, {0, -1}}},
	{Name: "frog", Color: Red, Moves: []Pos{{-1, 1}, {1, -1}, {-2, 0}}},
	{Name: "ox", Color: Blue, Moves: []Pos{{0, 1}, {0, -1}, {1, 0}}},
	{Name: "eel", Color: Blue, Moves: []Pos{{1, 0}, {-1, 1}, {-1, -1}}},
}

var cardsByName = func() map[string]Card {
	m := make(map[string]Card, len(Cards))
	for _, c := range Cards {
		m[c.Name] = c
	}
	return m
}()

// CardByName looks a card up in the catalog.
func CardByName(name string) (Card, bool) {
	c, ok := cardsByName[name]
	return c, ok
}

// CardsByName resolves a list of card names against the catalog. It reports
// false if any name is unknown.
func CardsByName(names []string) ([]Card, bool) {
	cards := make([]Card, 0, len(names))
	for _, name := range names {
		c, ok := cardsByName[name]
		if !ok {
			return nil, false
		}
		cards = append(cards, c)
	}
	return cards, true
}
