// Package dirmenu is a declarative terminal-menu toolkit. Menus render as a
// persistent scrollback log with the active page below it: each page writes
// through a tracked terminal wrapper that counts its lines, so the page can
// erase exactly its own output and hand the cursor back without ever
// touching the log above.
package dirmenu

import (
	"strings"

	"github.com/kungfusheep/dirmenu/term"
)

// TrackedTerm wraps a terminal handle and counts the lines the current page
// has written, so the page can be erased in place without the caller knowing
// in advance how many lines it would emit.
//
// Two counters drive every operation: linesWritten is the number of screen
// lines attributable to the current page since the last Reset, and up is the
// net upward cursor displacement — how many of those lines currently sit
// above the cursor due to explicit movement. up never exceeds linesWritten;
// the books never claim more was moved past than was written.
//
// Pages should write through WriteLine and call Reset when done (or before
// each loop iteration). Lines written around the wrapper become part of the
// permanent log and are never erased — see ForceClearLine for the escape
// hatch when that was a mistake.
type TrackedTerm struct {
	h            term.Handle
	linesWritten int
	up           int
}

// Track wraps the given handle.
func Track(h term.Handle) *TrackedTerm {
	return &TrackedTerm{h: h}
}

// Stdout returns a TrackedTerm over the process stdout and stdin.
func Stdout() *TrackedTerm {
	return Track(term.Stdout())
}

// Handle returns the underlying terminal handle. Anything written through it
// is untracked and becomes part of the permanent log.
func (t *TrackedTerm) Handle() term.Handle {
	return t.h
}

// LinesWritten returns the number of lines attributed to the current page.
func (t *TrackedTerm) LinesWritten() int {
	return t.linesWritten
}

// Displacement returns the net upward cursor displacement.
func (t *TrackedTerm) Displacement() int {
	return t.up
}

// WriteLine writes s to the terminal and increments the line count, once per
// line for multi-line strings.
func (t *TrackedTerm) WriteLine(s string) {
	for _, line := range splitLines(s) {
		t.h.WriteLine(line)
		t.linesWritten++
	}
}

// LineBreak writes an empty line, incrementing the line count.
func (t *TrackedTerm) LineBreak() {
	t.WriteLine("")
}

// Reset erases every tracked line and returns the cursor to the position it
// held at the start of the page, just below the log. Any outstanding upward
// displacement is consumed first so the erase starts beneath all tracked
// lines; the erase covers one extra line for the prompt line the widget
// layer leaves behind.
func (t *TrackedTerm) Reset() {
	if t.up > 0 {
		t.h.MoveCursorDown(t.up)
		t.up = 0
	}
	t.h.ClearLastLines(t.linesWritten + 1)
	t.linesWritten = 0
}

// ClearLastLines erases the bottom n still-visible tracked lines without
// resetting. n is clamped to the visible remainder so the erase can never
// reach the log; erased lines count as consumed upward displacement.
func (t *TrackedTerm) ClearLastLines(n int) {
	if visible := t.linesWritten - t.up; n > visible {
		n = visible
	}
	t.h.ClearLastLines(n)
	t.up += n
}

// MoveCursorUp moves the cursor up n lines and records the displacement.
// The recorded displacement is capped at the tracked line count: the cursor
// itself may travel into the log, but Reset will never erase there.
func (t *TrackedTerm) MoveCursorUp(n int) {
	t.h.MoveCursorUp(n)
	t.up += n
	if t.up > t.linesWritten {
		t.up = t.linesWritten
	}
}

// MoveCursorDown moves the cursor down n lines, consuming recorded upward
// displacement first. Movement past the tracked region creates that many new
// blank tracked lines below it.
func (t *TrackedTerm) MoveCursorDown(n int) {
	t.h.MoveCursorDown(n)
	if n <= t.up {
		t.up -= n
		return
	}
	t.linesWritten += n - t.up
	t.up = 0
}

// ForceClearLine erases one line without touching the counters. Only for
// output that bypassed this wrapper; clearing tracked lines with it
// desynchronizes the books.
func (t *TrackedTerm) ForceClearLine() {
	t.h.ClearLastLines(1)
}

// ReadKey blocks until a key is available. A read failure is unrecoverable
// for an interactive program and is returned as-is for the caller to abort
// on.
func (t *TrackedTerm) ReadKey() (term.Key, error) {
	return t.h.ReadKey()
}

// splitLines splits s into the lines WriteLine should emit: one empty line
// for the empty string, and no phantom trailing line when s ends in a
// newline.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
