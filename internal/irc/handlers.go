package irc

// This file contains documentation for the IRC event handlers.
// The actual handler implementations live in client.go; the command
// handlers themselves are in internal/session.

/*
Handler Summary:

Connection Events:
- 376/422 (onConnect): End of MOTD / MOTD missing - bot is connected
  - Joins the configured channel

Session Core Events:
- PRIVMSG (onPrivMsg): Channel traffic
  - Audits lines that look like commands
  - Feeds the raw line to the session core and executes its actions
  - Delivers (and removes) stored messages when their recipient speaks
- 353 (RPL_NAMREPLY): Replaces the roster with the listed nicknames
- JOIN/PART/QUIT: Adds or removes the nickname from the roster
- NICK: Renames within the roster; away state stays with the old name
- PING: Core answers with a pong action

Nick Issues:
- 433 (onNickInUse): ERR_NICKNAMEINUSE - switches to the alternate nick

CTCP:
- CTCP_VERSION: Responds with bot version information

Background:
- fireLoop: ticks once a second, fires and removes due schedule
  entries (reminders, delayed punchlines)
*/
