package irc

import (
	"testing"

	"github.com/ergochat/irc-go/ircmsg"
	"github.com/tattlebot/tattle/internal/session"
)

func mustParse(t *testing.T, line string) ircmsg.Message {
	t.Helper()
	msg, err := ircmsg.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", line, err)
	}
	return msg
}

func TestRawLineKeepsPayloadMarker(t *testing.T) {
	// Single-token payloads are the interesting cases: serializing
	// them without the colon would drop the marker the session
	// grammar requires.
	cases := []string{
		":alice!u@h PRIVMSG #x :!back",
		":alice!u@h PRIVMSG #x :!tell bob hi there",
		":irc.example.net 353 bot = #x :alice",
		":irc.example.net 353 bot = #x :alice @bob",
		":alice!u@h NICK :al1ce",
		"PING :irc.example.net",
	}
	for _, line := range cases {
		if got := rawLine(mustParse(t, line)); got != line {
			t.Errorf("rawLine round-trip of %q = %q", line, got)
		}
	}
}

func TestRawLineReachesTheCore(t *testing.T) {
	p := session.NewProcessor(nil, nil)
	st := session.NewState("")

	_, st = p.Process(rawLine(mustParse(t, ":alice!u@h JOIN #x")), st)
	if !st.Roster["alice"] {
		t.Fatal("join lost in re-serialization")
	}

	_, st = p.Process(rawLine(mustParse(t, ":alice!u@h PRIVMSG #x :!afk")), st)
	if _, ok := st.AwayStatus("alice"); !ok {
		t.Fatal("bare !afk lost in re-serialization")
	}

	actions, st := p.Process(rawLine(mustParse(t, ":alice!u@h PRIVMSG #x :!back")), st)
	if len(actions) != 1 || actions[0].Text != "Welcome back, alice!" {
		t.Errorf("!back reply = %v", actions)
	}
	if _, ok := st.AwayStatus("alice"); ok {
		t.Error("!back did not clear the away entry")
	}

	// a names reply for a single-occupant channel still replaces the
	// roster
	_, st = p.Process(rawLine(mustParse(t, ":irc.example.net 353 bot = #x :bob")), st)
	if len(st.Roster) != 1 || !st.Roster["bob"] {
		t.Errorf("roster = %v, want just bob", st.Roster)
	}
}
