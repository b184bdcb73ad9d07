package session

import (
	"testing"
	"time"
)

func TestParseEnvelope(t *testing.T) {
	now := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)

	env, ok := parseEnvelope(":alice!ident@example.net PRIVMSG #x :!tell bob hi there", now)
	if !ok {
		t.Fatal("parseEnvelope failed on a well-formed line")
	}
	if env.Ctx.Nick != "alice" {
		t.Errorf("nick = %q, want alice", env.Ctx.Nick)
	}
	if env.Ctx.Identity != "alice!ident@example.net" {
		t.Errorf("identity = %q", env.Ctx.Identity)
	}
	if env.Ctx.Channel != "#x" {
		t.Errorf("channel = %q, want #x", env.Ctx.Channel)
	}
	if !env.Ctx.Time.Equal(now) {
		t.Errorf("time = %v, want %v", env.Ctx.Time, now)
	}
	if env.Command != "!tell" {
		t.Errorf("command = %q, want !tell", env.Command)
	}
	if env.Args != "bob hi there" {
		t.Errorf("args = %q, want %q", env.Args, "bob hi there")
	}
}

func TestParseEnvelopeNoArgs(t *testing.T) {
	env, ok := parseEnvelope(":alice!u@h PRIVMSG #x :!back", time.Now())
	if !ok {
		t.Fatal("parseEnvelope failed")
	}
	if env.Command != "!back" || env.Args != "" {
		t.Errorf("got command %q args %q", env.Command, env.Args)
	}
}

func TestParseEnvelopeFailures(t *testing.T) {
	cases := []string{
		"alice!u@h PRIVMSG #x :!say hi",  // no source marker
		":alice PRIVMSG #x :!say hi",     // no ! in identity
		":alice!u@h",                     // nothing after identity
		":alice!u@h PRIVMSG",             // no channel
		":alice!u@h PRIVMSG #x",          // no payload
		":alice!u@h PRIVMSG #x !say hi",  // payload marker missing
		":alice!u@h PRIVMSG #x :",        // empty payload
	}
	for _, line := range cases {
		if _, ok := parseEnvelope(line, time.Now()); ok {
			t.Errorf("parseEnvelope(%q) succeeded, want failure", line)
		}
	}
}

func TestCutToken(t *testing.T) {
	tok, rest, ok := cutToken("  one two three")
	if !ok || tok != "one" || rest != "two three" {
		t.Errorf("got (%q, %q, %v)", tok, rest, ok)
	}
	if _, _, ok := cutToken("   "); ok {
		t.Error("cutToken on blanks should fail")
	}
}
