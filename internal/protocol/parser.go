package protocol

import (
	"errors"
	"strings"
)

// ErrBadCommand rejects a line whose verb or shape is not part of the grammar.
var ErrBadCommand = errors.New("invalid query")

// Command is one parsed client request. The set of implementations is closed;
// the server dispatches with an exhaustive type switch.
type Command interface {
	// Verb is the command's name as used in the error wire message.
	Verb() string
}

type Create struct {
	Username string
}

type CreateCustom struct {
	Color    string // "blue", "red", or "" for random
	Cards    []string
	Username string
}

type Join struct {
	MatchID  string
	Username string
}

type State struct {
	MatchID string
}

type Move struct {
	MatchID string
	Token   string
	Card    string
	Move    string
}

type Spectate struct {
	MatchID string
}

func (Create) Verb() string       { return "create" }
func (CreateCustom) Verb() string { return "create_custom" }
func (Join) Verb() string         { return "join" }
func (State) Verb() string        { return "state" }
func (Move) Verb() string         { return "move" }
func (Spectate) Verb() string     { return "spectate" }

// Parse turns one request line into a typed command. Usernames are the final
// argument of create, create_custom and join and may contain spaces; every
// other argument is a single token.
func Parse(line string) (Command, error) {
	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "create":
		if rest == "" {
			return nil, ErrBadCommand
		}
		return Create{Username: rest}, nil

	case "create_custom":
		return parseCreateCustom(rest)

	case "join":
		matchID, username, ok := strings.Cut(rest, " ")
		if !ok || matchID == "" || username == "" {
			return nil, ErrBadCommand
		}
		return Join{MatchID: matchID, Username: username}, nil

	case "state":
		if rest == "" || strings.Contains(rest, " ") {
			return nil, ErrBadCommand
		}
		return State{MatchID: rest}, nil

	case "move":
		fields := strings.Split(rest, " ")
		if len(fields) != 4 {
			return nil, ErrBadCommand
		}
		return Move{MatchID: fields[0], Token: fields[1], Card: fields[2], Move: fields[3]}, nil

	case "spectate":
		if rest == "" || strings.Contains(rest, " ") {
			return nil, ErrBadCommand
		}
		return Spectate{MatchID: rest}, nil

	default:
		return nil, ErrBadCommand
	}
}

// parseCreateCustom handles "create_custom [blue|red] c1 c2 c3 c4 c5 username".
// The leading color is optional; omitting it assigns the creator a random
// side.
func parseCreateCustom(rest string) (Command, error) {
	fields := strings.Split(rest, " ")
	color := ""
	if len(fields) > 0 && (fields[0] == "blue" || fields[0] == "red") {
		color = fields[0]
		fields = fields[1:]
	}
	if len(fields) < 6 {
		return nil, ErrBadCommand
	}
	return CreateCustom{
		Color:    color,
		Cards:    fields[:5],
		Username: strings.Join(fields[5:], " "),
	}, nil
}
