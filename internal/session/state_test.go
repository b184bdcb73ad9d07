package session

import (
	"testing"
	"time"
)

func TestSplitDue(t *testing.T) {
	t0 := fixedTime()
	st := NewState("")
	st.Schedule = []Scheduled{
		{At: t0.Add(-time.Second), Actions: []Action{msg("late")}},
		{At: t0.Add(time.Minute), Actions: []Action{msg("later")}},
		{At: t0, Actions: []Action{msg("now")}},
	}

	due, pending := st.SplitDue(t0)
	if len(due) != 2 {
		t.Fatalf("due has %d entries, want 2", len(due))
	}
	if due[0].Actions[0].Text != "late" || due[1].Actions[0].Text != "now" {
		t.Errorf("due entries out of order: %+v", due)
	}
	if len(pending) != 1 || pending[0].Actions[0].Text != "later" {
		t.Errorf("pending = %+v", pending)
	}

	// SplitDue is a pure read
	if len(st.Schedule) != 3 {
		t.Error("SplitDue modified the schedule")
	}
}

func TestSplitDueEmpty(t *testing.T) {
	st := NewState("")
	due, pending := st.SplitDue(fixedTime())
	if due != nil || pending != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", due, pending)
	}
}

func TestNewState(t *testing.T) {
	st := NewState("s3cret")
	if st.Secret != "s3cret" {
		t.Errorf("secret = %q", st.Secret)
	}
	if st.Roster == nil || st.Away == nil || st.Inbox == nil {
		t.Error("stores must be initialized")
	}
	if len(st.Roster) != 0 || len(st.Away) != 0 || len(st.Inbox) != 0 || len(st.Schedule) != 0 {
		t.Error("new state must be empty")
	}
}

func TestPendingMessagesEmpty(t *testing.T) {
	st := NewState("")
	if msgs := st.PendingMessages("nobody"); msgs != nil {
		t.Errorf("got %v, want nil", msgs)
	}
}
