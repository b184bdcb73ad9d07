package session

import (
	"strings"
	"time"
)

// envelope is the parsed prefix of a channel message plus the command
// it carries. Args is the rest of the line after the command token,
// kept verbatim so free-text arguments preserve embedded spaces.
type envelope struct {
	Ctx     Context
	Command string
	Args    string
}

// parseEnvelope parses ":nick!user@host PRIVMSG #chan :cmd rest".
// Any missing marker or token fails the whole line; the caller then
// discards everything parsed so far.
func parseEnvelope(line string, now time.Time) (envelope, bool) {
	var env envelope

	rest, ok := strings.CutPrefix(line, ":")
	if !ok {
		return env, false
	}

	ident, rest, ok := cutToken(rest)
	if !ok {
		return env, false
	}
	nick, after, ok := strings.Cut(ident, "!")
	if !ok || nick == "" {
		return env, false
	}
	env.Ctx.Nick = nick
	env.Ctx.Identity = nick + "!" + after
	env.Ctx.Time = now

	// skip the verb; classification already matched it
	if _, rest, ok = cutToken(rest); !ok {
		return env, false
	}

	var channel string
	if channel, rest, ok = cutToken(rest); !ok {
		return env, false
	}
	env.Ctx.Channel = channel

	rest = strings.TrimLeft(rest, " ")
	if rest, ok = strings.CutPrefix(rest, ":"); !ok {
		return env, false
	}

	cmd, args, ok := cutToken(rest)
	if !ok {
		return env, false
	}
	env.Command = cmd
	env.Args = args
	return env, true
}

// cutToken splits off the first whitespace-delimited token, skipping
// any leading run of spaces. ok is false when no token remains.
func cutToken(s string) (tok, rest string, ok bool) {
	s = strings.TrimLeft(s, " ")
	if s == "" {
		return "", "", false
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", true
}
