package session

import "strings"

// Kind tags a raw protocol line by what its leading tokens say it is.
type Kind int

const (
	Other Kind = iota
	Ping
	ChannelMessage
	PresenceList
	NickChange
	Part // covers both PART and QUIT
	Join
)

// Classify inspects at most the first two whitespace-delimited tokens
// of a raw line and never validates the remainder. The second return
// is false only for a line with no tokens at all.
func Classify(line string) (Kind, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Other, false
	}
	if fields[0] == "PING" {
		return Ping, true
	}
	if len(fields) < 2 {
		return Other, true
	}
	switch fields[1] {
	case "PRIVMSG":
		return ChannelMessage, true
	case "353": // RPL_NAMREPLY
		return PresenceList, true
	case "NICK":
		return NickChange, true
	case "PART", "QUIT":
		return Part, true
	case "JOIN":
		return Join, true
	}
	return Other, true
}
