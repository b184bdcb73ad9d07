// Package session implements the bot's line-processing core: a pure,
// synchronous transformer that turns one raw IRC line plus the current
// session state into a list of output actions and the next state. It
// performs no I/O; the network driver in internal/irc feeds it lines
// and executes what comes back.
package session

import "time"

// Validator reports whether a candidate secret matches the configured
// one. The comparison itself lives outside the core.
type Validator func(candidate, secret string) bool

// Styler decorates user-facing status text. The core never emits raw
// control codes itself.
type Styler interface {
	Good(s string) string
	Bad(s string) string
	Notice(s string) string
}

// plainStyler passes text through unchanged.
type plainStyler struct{}

func (plainStyler) Good(s string) string   { return s }
func (plainStyler) Bad(s string) string    { return s }
func (plainStyler) Notice(s string) string { return s }

// Processor interprets raw protocol lines. It holds only its
// collaborators; all session memory lives in the State value threaded
// through Process. Callers must serialize Process calls per session.
type Processor struct {
	Clock    func() time.Time
	Validate Validator
	Style    Styler
}

// NewProcessor returns a Processor using the given secret validator
// and styler. A nil styler falls back to undecorated text and a nil
// clock to time.Now.
func NewProcessor(validate Validator, style Styler) *Processor {
	return &Processor{Validate: validate, Style: style}
}

// Process interprets one raw line against st. It either succeeds,
// returning the actions to execute in order and the updated state, or
// fails as a whole, returning a single NoAction and st unchanged.
// Malformed input is a no-op by contract, never an error.
func (p *Processor) Process(line string, st State) ([]Action, State) {
	kind, ok := Classify(line)
	if !ok {
		return noop(), st
	}

	switch kind {
	case Ping:
		return []Action{{Kind: SendPong}}, st

	case ChannelMessage:
		env, ok := parseEnvelope(line, p.now())
		if !ok {
			return noop(), st
		}
		return p.dispatch(env, st)

	case PresenceList:
		names, ok := parseNames(line)
		if !ok {
			return noop(), st
		}
		return noop(), replaceRoster(st, names)

	case Join:
		nick, ok := parseSourceNick(line)
		if !ok {
			return noop(), st
		}
		return noop(), addToRoster(st, nick)

	case Part:
		nick, ok := parseSourceNick(line)
		if !ok {
			return noop(), st
		}
		return noop(), removeFromRoster(st, nick)

	case NickChange:
		oldNick, newNick, ok := parseNickChange(line)
		if !ok {
			return noop(), st
		}
		return noop(), renameInRoster(st, oldNick, newNick)
	}

	return noop(), st
}

func (p *Processor) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

func (p *Processor) style() Styler {
	if p.Style != nil {
		return p.Style
	}
	return plainStyler{}
}

func (p *Processor) checkSecret(candidate, secret string) bool {
	if p.Validate == nil {
		return false
	}
	return p.Validate(candidate, secret)
}
