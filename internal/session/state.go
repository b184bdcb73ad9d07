package session

import "time"

// Context is a snapshot of who sent a channel message, where, and
// when. It is captured at parse time and embedded in stored messages
// so later delivery can report the origin.
type Context struct {
	Nick     string // sender nickname
	Identity string // full nick!user@host identity
	Channel  string
	Time     time.Time
}

// UserMessage pairs a message body with the context it arrived in.
type UserMessage struct {
	Text string
	Ctx  Context
}

// Scheduled is a batch of actions to be emitted at or after At. The
// core only appends these; the driver fires and removes them.
type Scheduled struct {
	At      time.Time
	Actions []Action
}

// State is the whole of the bot's session memory. It is passed by
// value into Process and returned updated; a line that fails to parse
// comes back untouched. Roster and Away are independent stores: a
// user can stay marked away after leaving the channel until they
// clear it themselves.
type State struct {
	Roster   map[string]bool
	Away     map[string]UserMessage // zero Text means away with no message
	Inbox    map[string][]UserMessage
	Schedule []Scheduled
	Secret   string
}

// NewState returns an empty session with the configured shared secret.
func NewState(secret string) State {
	return State{
		Roster: make(map[string]bool),
		Away:   make(map[string]UserMessage),
		Inbox:  make(map[string][]UserMessage),
		Secret: secret,
	}
}

// AwayStatus reports whether nick is marked away and any message they
// left. This holds regardless of roster membership.
func (st State) AwayStatus(nick string) (UserMessage, bool) {
	m, ok := st.Away[nick]
	return m, ok
}

// PendingMessages returns the stored messages for a recipient in
// arrival order. Removal after delivery is the caller's job.
func (st State) PendingMessages(nick string) []UserMessage {
	return st.Inbox[nick]
}

// SplitDue partitions the schedule around now without modifying st.
// The driver emits the due half and keeps the pending half.
func (st State) SplitDue(now time.Time) (due, pending []Scheduled) {
	for _, entry := range st.Schedule {
		if entry.At.After(now) {
			pending = append(pending, entry)
		} else {
			due = append(due, entry)
		}
	}
	return due, pending
}
