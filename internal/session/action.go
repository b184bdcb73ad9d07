package session

// ActionKind discriminates the closed set of effects the core can ask
// the driver to perform.
type ActionKind int

const (
	NoAction ActionKind = iota
	SendMessage
	SendPong
	RejoinChannel
	ChangeNick
	DebugDump
)

// Action is one output effect. Text carries the message body for
// SendMessage, the new nickname for ChangeNick and the payload for
// DebugDump; it is empty for the other kinds.
type Action struct {
	Kind ActionKind
	Text string
}

func msg(text string) Action { return Action{Kind: SendMessage, Text: text} }

// noop is the canonical result of a line that parsed to nothing or
// failed to parse: exactly one NoAction.
func noop() []Action { return []Action{{Kind: NoAction}} }
