package format

import "testing"

func TestBold(t *testing.T) {
	if got := Bold("hi"); got != "\x02hi\x02" {
		t.Errorf("Bold = %q", got)
	}
}

func TestColor(t *testing.T) {
	if got := Color("ok", Green); got != "\x0303ok\x0f" {
		t.Errorf("Color = %q", got)
	}
	// two-digit padding keeps following digits in the text from being
	// read as part of the color index
	if got := Color("7", Red); got != "\x03047\x0f" {
		t.Errorf("Color = %q", got)
	}
}

func TestStyler(t *testing.T) {
	var s Styler
	if s.Good("up") != Color("up", Green) {
		t.Error("Good should be green")
	}
	if s.Bad("down") != Color("down", Red) {
		t.Error("Bad should be red")
	}
	if s.Notice("away") != Color("away", Orange) {
		t.Error("Notice should be orange")
	}
}
