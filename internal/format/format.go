// Package format renders channel-visible text decoration using mIRC
// control codes.
package format

import "fmt"

const (
	boldCode  = "\x02"
	colorCode = "\x03"
	resetCode = "\x0f"
)

// mIRC palette indexes.
const (
	Green  = 3
	Red    = 4
	Orange = 7
)

// Bold wraps s in bold markers.
func Bold(s string) string { return boldCode + s + boldCode }

// Color wraps s in the given foreground color, resetting afterwards.
func Color(s string, c int) string {
	return fmt.Sprintf("%s%02d%s%s", colorCode, c, s, resetCode)
}

// Styler implements the session styling port: green for good news,
// red for bad, orange for notices.
type Styler struct{}

func (Styler) Good(s string) string   { return Color(s, Green) }
func (Styler) Bad(s string) string    { return Color(s, Red) }
func (Styler) Notice(s string) string { return Color(s, Orange) }
