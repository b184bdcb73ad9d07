package session

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		line string
		kind Kind
		ok   bool
	}{
		{"PING :irc.example.net", Ping, true},
		{"PING", Ping, true},
		{":a!u@h PRIVMSG #chan :hello", ChannelMessage, true},
		{":irc.example.net 353 bot = #chan :a @b", PresenceList, true},
		{":a!u@h NICK :b", NickChange, true},
		{":a!u@h PART #chan :bye", Part, true},
		{":a!u@h QUIT :gone", Part, true},
		{":a!u@h JOIN #chan", Join, true},
		{":irc.example.net 372 bot :- motd line", Other, true},
		{":a!u@h NOTICE #chan :hi", Other, true},
		{":lonely", Other, true},
		{"", Other, false},
		{"   ", Other, false},
	}

	for _, tc := range cases {
		kind, ok := Classify(tc.line)
		if kind != tc.kind || ok != tc.ok {
			t.Errorf("Classify(%q) = (%v, %v), want (%v, %v)", tc.line, kind, ok, tc.kind, tc.ok)
		}
	}
}

func TestClassifyIgnoresRemainder(t *testing.T) {
	// Classification only looks at leading tokens; garbage after them
	// is someone else's problem.
	kind, ok := Classify(":a!u@h PRIVMSG")
	if kind != ChannelMessage || !ok {
		t.Errorf("expected ChannelMessage for truncated PRIVMSG, got %v", kind)
	}
}
