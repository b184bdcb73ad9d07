package session

import "strings"

// namePrefixes are the channel status markers servers prepend to
// nicknames in a 353 reply.
const namePrefixes = "@+%~&"

// parseNames extracts the nickname list from a names reply:
// ":server 353 me = #chan :nick1 @nick2 +nick3".
func parseNames(line string) ([]string, bool) {
	i := strings.Index(line, " :")
	if i < 0 {
		return nil, false
	}
	names := strings.Fields(line[i+2:])
	if len(names) == 0 {
		return nil, false
	}
	for j, n := range names {
		names[j] = strings.TrimLeft(n, namePrefixes)
	}
	return names, true
}

// parseSourceNick pulls the nickname out of the :nick!user@host source
// prefix of a JOIN, PART or QUIT line.
func parseSourceNick(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, ":")
	if !ok {
		return "", false
	}
	tok, _, ok := cutToken(rest)
	if !ok {
		return "", false
	}
	nick, _, ok := strings.Cut(tok, "!")
	if !ok || nick == "" {
		return "", false
	}
	return nick, true
}

// parseNickChange returns (old, new) from ":old!user@host NICK :new".
// Some servers omit the colon on the trailing parameter.
func parseNickChange(line string) (oldNick, newNick string, ok bool) {
	oldNick, ok = parseSourceNick(line)
	if !ok {
		return "", "", false
	}
	rest := line
	if _, rest, ok = cutToken(rest); !ok {
		return "", "", false
	}
	if _, rest, ok = cutToken(rest); !ok {
		return "", "", false
	}
	tok, _, ok := cutToken(rest)
	if !ok {
		return "", "", false
	}
	newNick = strings.TrimPrefix(tok, ":")
	if newNick == "" {
		return "", "", false
	}
	return oldNick, newNick, true
}

// replaceRoster installs names as the entire roster. The previous set
// is dropped, not merged.
func replaceRoster(st State, names []string) State {
	roster := make(map[string]bool, len(names))
	for _, n := range names {
		roster[n] = true
	}
	st.Roster = roster
	return st
}

func addToRoster(st State, nick string) State {
	st.Roster[nick] = true
	return st
}

// removeFromRoster drops nick from the roster. Away state is a
// separate store and stays as it is.
func removeFromRoster(st State, nick string) State {
	delete(st.Roster, nick)
	return st
}

// renameInRoster treats a nick change as a part of the old name plus a
// fresh join of the new one. Away state does not migrate.
func renameInRoster(st State, oldNick, newNick string) State {
	delete(st.Roster, oldNick)
	st.Roster[newNick] = true
	return st
}
