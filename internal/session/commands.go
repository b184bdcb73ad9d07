package session

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// dispatch routes a parsed channel message to its command handler. An
// unknown command is a successful parse that does nothing.
func (p *Processor) dispatch(env envelope, st State) ([]Action, State) {
	switch env.Command {
	case "!tell":
		return cmdTell(env, st)
	case "!afk":
		return cmdAfk(env, st)
	case "!back":
		return cmdBack(env, st)
	case "!where":
		return p.cmdWhere(env, st)
	case "!remind":
		return cmdRemind(env, st)
	case "!waitforit":
		return cmdWaitForIt(env, st)
	case "!say":
		return cmdSay(env, st)
	case "!rejoin":
		return cmdRejoin(env, st)
	case "!dump":
		return p.cmdDump(env, st)
	case "!nick":
		return p.cmdNick(env, st)
	}
	return noop(), st
}

// cmdTell stores a message for a user who is not around. The driver
// delivers and removes it when the recipient next speaks.
func cmdTell(env envelope, st State) ([]Action, State) {
	recipient, text, ok := cutToken(env.Args)
	if !ok || strings.TrimSpace(text) == "" {
		return noop(), st
	}
	st.Inbox[recipient] = append(st.Inbox[recipient], UserMessage{Text: text, Ctx: env.Ctx})
	return []Action{msg("I will tell it them, as soon as i see them")}, st
}

// cmdAfk marks the sender away, with whatever message follows the
// command. A repeat updates the stored message and says so; !back is
// the explicit way back.
func cmdAfk(env envelope, st State) ([]Action, State) {
	_, already := st.Away[env.Ctx.Nick]
	st.Away[env.Ctx.Nick] = UserMessage{Text: env.Args, Ctx: env.Ctx}
	if already {
		return []Action{msg(fmt.Sprintf("%s: you are already marked away", env.Ctx.Nick))}, st
	}
	return []Action{msg(fmt.Sprintf("%s is now away", env.Ctx.Nick))}, st
}

func cmdBack(env envelope, st State) ([]Action, State) {
	if _, ok := st.Away[env.Ctx.Nick]; !ok {
		return []Action{msg(fmt.Sprintf("%s: you are not away", env.Ctx.Nick))}, st
	}
	delete(st.Away, env.Ctx.Nick)
	return []Action{msg(fmt.Sprintf("Welcome back, %s!", env.Ctx.Nick))}, st
}

// cmdWhere reports a user's presence. Offline wins over away: the
// away store is only consulted for users still in the roster.
func (p *Processor) cmdWhere(env envelope, st State) ([]Action, State) {
	target, _, ok := cutToken(env.Args)
	if !ok {
		return noop(), st
	}
	style := p.style()
	if !st.Roster[target] {
		return []Action{msg(style.Bad(fmt.Sprintf("%s is offline", target)))}, st
	}
	if away, ok := st.Away[target]; ok {
		if away.Text == "" {
			return []Action{msg(style.Notice(fmt.Sprintf("%s is online, but away (no message)", target)))}, st
		}
		return []Action{msg(style.Notice(fmt.Sprintf("%s is online, but away: %s", target, away.Text)))}, st
	}
	return []Action{msg(style.Good(fmt.Sprintf("%s is online", target)))}, st
}

// unitSeconds maps a duration suffix to seconds.
func unitSeconds(u byte) (int, bool) {
	switch u {
	case 's':
		return 1, true
	case 'm':
		return 60, true
	case 'h':
		return 3600, true
	}
	return 0, false
}

// cmdRemind schedules a message for later delivery:
// !remind <nick|me> <N><s|m|h> <text>
func cmdRemind(env envelope, st State) ([]Action, State) {
	recipient, rest, ok := cutToken(env.Args)
	if !ok {
		return noop(), st
	}
	if recipient == "me" {
		recipient = env.Ctx.Nick
	}
	amount, rest, ok := cutToken(rest)
	if !ok || len(amount) < 2 {
		return noop(), st
	}
	unit, ok := unitSeconds(amount[len(amount)-1])
	if !ok {
		return noop(), st
	}
	n, err := strconv.Atoi(amount[:len(amount)-1])
	if err != nil {
		return noop(), st
	}
	if strings.TrimSpace(rest) == "" {
		return noop(), st
	}
	at := env.Ctx.Time.Add(time.Duration(n*unit) * time.Second)
	st.Schedule = append(st.Schedule, Scheduled{
		At:      at,
		Actions: []Action{msg(recipient + ": " + rest)},
	})
	return []Action{msg("Will do!")}, st
}

// cmdWaitForIt sets up a delayed punchline N seconds out.
func cmdWaitForIt(env envelope, st State) ([]Action, State) {
	arg, _, ok := cutToken(env.Args)
	if !ok {
		return noop(), st
	}
	secs, err := strconv.Atoi(arg)
	if err != nil || secs < 0 {
		return noop(), st
	}
	at := env.Ctx.Time.Add(time.Duration(secs) * time.Second)
	st.Schedule = append(st.Schedule, Scheduled{
		At: at,
		Actions: []Action{
			msg("...dary!"),
			msg("Legendary!"),
		},
	})
	return []Action{
		msg("It's going to be legen..."),
		msg("wait for it..."),
	}, st
}

func cmdSay(env envelope, st State) ([]Action, State) {
	if env.Args == "" {
		return noop(), st
	}
	return []Action{msg(env.Args)}, st
}

func cmdRejoin(env envelope, st State) ([]Action, State) {
	return []Action{{Kind: RejoinChannel}}, st
}

// cmdDump prints the session memory: !dump <secret>. A bad secret
// parses fine but produces nothing at all.
func (p *Processor) cmdDump(env envelope, st State) ([]Action, State) {
	candidate, _, ok := cutToken(env.Args)
	if !ok {
		return noop(), st
	}
	if !p.checkSecret(candidate, st.Secret) {
		return nil, st
	}
	return []Action{{Kind: DebugDump, Text: dumpState(st)}}, st
}

// cmdNick changes the bot's nickname: !nick <secret> <newnick>.
func (p *Processor) cmdNick(env envelope, st State) ([]Action, State) {
	candidate, rest, ok := cutToken(env.Args)
	if !ok {
		return noop(), st
	}
	newNick, _, ok := cutToken(rest)
	if !ok {
		return noop(), st
	}
	if !p.checkSecret(candidate, st.Secret) {
		return nil, st
	}
	return []Action{{Kind: ChangeNick, Text: newNick}}, st
}

// dumpState renders the session memory, one line per store.
func dumpState(st State) string {
	roster := sortedKeys(st.Roster)
	away := make([]string, 0, len(st.Away))
	for nick := range st.Away {
		away = append(away, nick)
	}
	sort.Strings(away)

	stored := 0
	for _, msgs := range st.Inbox {
		stored += len(msgs)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "roster: %s\n", strings.Join(roster, " "))
	fmt.Fprintf(&b, "away: %s\n", strings.Join(away, " "))
	fmt.Fprintf(&b, "inbox: %d messages for %d recipients\n", stored, len(st.Inbox))
	fmt.Fprintf(&b, "schedule: %d pending", len(st.Schedule))
	return b.String()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
