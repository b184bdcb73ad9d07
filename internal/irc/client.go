package irc

import (
	"crypto/subtle"
	"crypto/tls"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ergochat/irc-go/ircevent"
	"github.com/ergochat/irc-go/ircmsg"
	"github.com/tattlebot/tattle/internal/config"
	"github.com/tattlebot/tattle/internal/format"
	"github.com/tattlebot/tattle/internal/session"
	"github.com/tattlebot/tattle/internal/storage"
)

// Version information (set at build time or here)
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Client drives one bot session in one channel. It owns the
// connection, feeds raw lines to the session core and executes the
// actions that come back. Session state lives behind mu; the core
// requires a single writer and this mutex is it.
type Client struct {
	conn *ircevent.Connection
	cfg  *config.Config

	mu        sync.Mutex
	state     session.State
	proc      *session.Processor
	audit     []string
	pingToken string // payload of the last PING, echoed in the pong

	done chan struct{}
}

// NewClient creates a new IRC client
func NewClient(cfg *config.Config) (*Client, error) {
	c := &Client{
		cfg:   cfg,
		state: session.NewState(cfg.Secret),
		done:  make(chan struct{}),
	}
	c.proc = session.NewProcessor(validateSecret, format.Styler{})

	var err error
	c.audit, err = storage.LoadAudit(cfg.DataDir)
	if err != nil {
		log.Printf("Warning: could not load audit trail: %v", err)
	}

	// Create IRC connection
	conn := &ircevent.Connection{
		Server:      fmt.Sprintf("%s:%d", cfg.Server, cfg.Port),
		Nick:        cfg.Nick,
		User:        cfg.Username,
		RealName:    cfg.IRCName,
		Password:    cfg.ServerPass,
		QuitMessage: "Shutting down",
		Debug:       false,
		UseTLS:      false,
		TLSConfig:   &tls.Config{InsecureSkipVerify: true},
	}
	c.conn = conn

	c.registerHandlers()

	return c, nil
}

// validateSecret gates privileged commands: constant-time comparison
// against the configured secret. An empty secret disables them.
func validateSecret(candidate, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(secret)) == 1
}

func (c *Client) registerHandlers() {
	// Connected (end of MOTD)
	c.conn.AddCallback("376", c.onConnect)
	c.conn.AddCallback("422", c.onConnect) // MOTD missing is also "connected"

	// Everything the session core interprets
	c.conn.AddCallback("PRIVMSG", c.onPrivMsg)
	c.conn.AddCallback("353", c.onCoreEvent) // RPL_NAMREPLY
	c.conn.AddCallback("JOIN", c.onCoreEvent)
	c.conn.AddCallback("PART", c.onCoreEvent)
	c.conn.AddCallback("QUIT", c.onCoreEvent)
	c.conn.AddCallback("NICK", c.onCoreEvent)
	c.conn.AddCallback("PING", c.onPing)

	// Nick issues
	c.conn.AddCallback("433", c.onNickInUse) // ERR_NICKNAMEINUSE

	// CTCP VERSION
	c.conn.AddCallback("CTCP_VERSION", c.onCtcpVersion)
}

// Connect initiates the IRC connection and starts the schedule loop
func (c *Client) Connect() error {
	if err := c.conn.Connect(); err != nil {
		return err
	}
	go c.fireLoop()
	return nil
}

// Loop runs the IRC event loop (blocking)
func (c *Client) Loop() {
	c.conn.Loop()
}

// Quit disconnects from IRC
func (c *Client) Quit() {
	close(c.done)
	c.conn.Quit()
}

func (c *Client) onConnect(e ircmsg.Message) {
	log.Println("Connected to IRC server")
	c.conn.Send("JOIN", c.cfg.Channel)
	log.Printf("Joined %s, bot initialization complete", c.cfg.Channel)
}

// rawLine rebuilds the wire form of a parsed message. The trailing
// parameter always gets its colon marker: ircmsg.Line omits it for
// single-token payloads, which would strip the payload marker the
// session grammar keys on (bare !back, a one-nick 353 reply).
func rawLine(e ircmsg.Message) string {
	var b strings.Builder
	if e.Source != "" {
		b.WriteString(":")
		b.WriteString(e.Source)
		b.WriteString(" ")
	}
	b.WriteString(e.Command)
	for i, p := range e.Params {
		b.WriteString(" ")
		if i == len(e.Params)-1 {
			b.WriteString(":")
		}
		b.WriteString(p)
	}
	return b.String()
}

// onCoreEvent rebuilds the raw line and runs it through the session
// core.
func (c *Client) onCoreEvent(e ircmsg.Message) {
	c.feed(rawLine(e))
}

func (c *Client) onPrivMsg(e ircmsg.Message) {
	if len(e.Params) >= 2 && strings.HasPrefix(e.Params[1], "!") {
		c.logAudit(fmt.Sprintf("%s -> %s", e.Source, e.Params[1]))
	}

	c.onCoreEvent(e)

	// Channel traffic from a nick with stored messages triggers
	// delivery. The core only accumulates; removal happens here.
	if len(e.Params) < 1 || !strings.EqualFold(e.Params[0], c.cfg.Channel) {
		return
	}
	nick := e.Nick()

	c.mu.Lock()
	pending := c.state.PendingMessages(nick)
	delete(c.state.Inbox, nick)
	c.mu.Unlock()

	for _, m := range pending {
		c.conn.Privmsg(c.cfg.Channel, fmt.Sprintf("%s: %s (%s in %s, %s)",
			format.Bold(nick), m.Text, m.Ctx.Nick, m.Ctx.Channel,
			m.Ctx.Time.UTC().Format("Jan 02 15:04")))
	}
	if len(pending) > 0 {
		c.logAudit(fmt.Sprintf("delivered %d stored message(s) to %s", len(pending), nick))
	}
}

// onPing remembers the ping payload so the core's pong action can
// echo it. ircevent answers pings itself as well; the extra pong with
// the same token is accepted by servers and keeps the core's action
// path honest.
func (c *Client) onPing(e ircmsg.Message) {
	if len(e.Params) > 0 {
		c.mu.Lock()
		c.pingToken = e.Params[0]
		c.mu.Unlock()
	}
	c.onCoreEvent(e)
}

func (c *Client) onNickInUse(e ircmsg.Message) {
	if c.conn.CurrentNick() == c.cfg.Alternate {
		return
	}
	log.Printf("Nick in use, switching to alternate: %s", c.cfg.Alternate)
	c.conn.SetNick(c.cfg.Alternate)
}

// feed runs one raw line through the session core and executes the
// resulting actions. On parse failure the core hands back the old
// state and a single NoAction, so assigning unconditionally is safe.
func (c *Client) feed(raw string) {
	c.mu.Lock()
	actions, st := c.proc.Process(raw, c.state)
	c.state = st
	c.mu.Unlock()

	c.execute(actions)
}

// execute performs the core's actions in order.
func (c *Client) execute(actions []session.Action) {
	for _, a := range actions {
		switch a.Kind {
		case session.SendMessage:
			c.conn.Privmsg(c.cfg.Channel, a.Text)
		case session.SendPong:
			c.mu.Lock()
			token := c.pingToken
			c.mu.Unlock()
			if token == "" {
				token = c.cfg.Server
			}
			c.conn.Send("PONG", token)
		case session.RejoinChannel:
			c.conn.Send("JOIN", c.cfg.Channel)
		case session.ChangeNick:
			c.conn.SetNick(a.Text)
		case session.DebugDump:
			for _, line := range strings.Split(a.Text, "\n") {
				c.conn.Privmsg(c.cfg.Channel, line)
			}
		}
	}
}

// fireLoop scans the schedule once a second and emits anything due.
// Removal is the driver's job; the core treats the schedule as
// append-only.
func (c *Client) fireLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			due, pending := c.state.SplitDue(now)
			c.state.Schedule = pending
			c.mu.Unlock()

			for _, entry := range due {
				c.execute(entry.Actions)
			}
		}
	}
}

func (c *Client) onCtcpVersion(e ircmsg.Message) {
	nick := e.Nick()
	reply := fmt.Sprintf("tattle %s (built %s, commit %s)", Version, BuildDate, GitCommit)
	c.conn.SendRaw(fmt.Sprintf("NOTICE %s :\x01VERSION %s\x01", nick, reply))
}

func (c *Client) logAudit(entry string) {
	timestamp := time.Now().UTC().Format("Mon Jan 02, 2006 at 15:04:05 GMT")
	line := fmt.Sprintf("%s: %s", timestamp, entry)

	c.mu.Lock()
	c.audit = storage.AddAudit(c.audit, line)
	snapshot := c.audit
	c.mu.Unlock()

	if err := storage.SaveAudit(c.cfg.DataDir, snapshot); err != nil {
		log.Printf("Error saving audit trail: %v", err)
	}
}
