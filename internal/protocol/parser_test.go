package protocol

import (
	"reflect"
	"testing"
)

func TestParseKnownCommands(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"create alice", Create{Username: "alice"}},
		{"create alice b", Create{Username: "alice b"}},
		{"join m1 bob", Join{MatchID: "m1", Username: "bob"}},
		{"join m1 bob the builder", Join{MatchID: "m1", Username: "bob the builder"}},
		{"state m1", State{MatchID: "m1"}},
		{"spectate m1", Spectate{MatchID: "m1"}},
		{"move m1 tok boar a1a2", Move{MatchID: "m1", Token: "tok", Card: "boar", Move: "a1a2"}},
		{
			"create_custom blue tiger crab ox horse boar alice",
			CreateCustom{Color: "blue", Cards: []string{"tiger", "crab", "ox", "horse", "boar"}, Username: "alice"},
		},
		{
			"create_custom tiger crab ox horse boar alice b",
			CreateCustom{Cards: []string{"tiger", "crab", "ox", "horse", "boar"}, Username: "alice b"},
		},
	}
	for _, tc := range cases {
		got, err := Parse(tc.line)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.line, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tc.line, got, tc.want)
		}
	}
}

func TestParseRejectsMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"create",
		"create ",
		"join m1",
		"state",
		"state m1 extra",
		"spectate",
		"spectate m1 extra",
		"move m1 tok boar",
		"move m1 tok boar a1a2 extra",
		"create_custom blue tiger crab ox horse boar",
		"destroy m1",
		"CREATE alice",
	}
	for _, line := range lines {
		if cmd, err := Parse(line); err == nil {
			t.Errorf("Parse(%q) = %#v, want error", line, cmd)
		}
	}
}

func TestCommandVerbs(t *testing.T) {
	cases := map[string]Command{
		"create":        Create{},
		"create_custom": CreateCustom{},
		"join":          Join{},
		"state":         State{},
		"move":          Move{},
		"spectate":      Spectate{},
	}
	for want, cmd := range cases {
		if got := cmd.Verb(); got != want {
			t.Errorf("Verb() = %q, want %q", got, want)
		}
	}
}
