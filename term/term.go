// Package term provides the raw terminal layer for dirmenu: an ANSI
// handle with best-effort line writes, cursor movement, line clearing,
// and blocking key reads.
package term

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Handle is the terminal contract consumed by the tracked wrapper and the
// prompt widgets. Write, clear and move operations are best-effort: failures
// are swallowed and output simply may be incomplete. ReadKey is the only
// operation whose failure matters to callers.
type Handle interface {
	// WriteLine writes a single line of text followed by a newline.
	WriteLine(s string)
	// ClearLastLines erases the last n lines and leaves the cursor at the
	// start of the topmost erased line.
	ClearLastLines(n int)
	// MoveCursorUp moves the cursor up n lines.
	MoveCursorUp(n int)
	// MoveCursorDown moves the cursor down n lines.
	MoveCursorDown(n int)
	// ReadKey blocks until a key is available and returns it.
	ReadKey() (Key, error)
}

// Terminal is the concrete Handle over a writer/reader pair, normally
// os.Stdout and os.Stdin. Key reads put the input into raw mode for the
// duration of the read, so all writes happen in cooked mode and plain
// newlines are safe.
type Terminal struct {
	w  io.Writer
	r  io.Reader
	in *os.File // non-nil when the reader is a real terminal
}

// Stdout returns a Terminal connected to the process stdout and stdin.
func Stdout() *Terminal {
	return New(os.Stdout, os.Stdin)
}

// New creates a Terminal over an arbitrary writer and reader. If the reader
// is an *os.File attached to a tty, key reads use raw mode.
func New(w io.Writer, r io.Reader) *Terminal {
	t := &Terminal{w: w, r: r}
	if f, ok := r.(*os.File); ok && xterm.IsTerminal(int(f.Fd())) {
		t.in = f
	}
	return t
}

// Interactive reports whether key reads come from a real terminal.
func (t *Terminal) Interactive() bool {
	return t.in != nil
}

// Width returns the terminal width in columns, or 80 when it cannot be
// determined (no tty, or the ioctl fails).
func (t *Terminal) Width() int {
	f, ok := t.w.(*os.File)
	if !ok {
		return 80
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}

// WriteLine writes s and a trailing newline. Errors are swallowed.
func (t *Terminal) WriteLine(s string) {
	fmt.Fprint(t.w, s, "\n")
}

// ClearLastLines erases the last n lines, moving up through them, and leaves
// the cursor at column zero of the topmost erased line.
func (t *Terminal) ClearLastLines(n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		fmt.Fprint(t.w, "\x1b[1A\x1b[2K")
	}
	fmt.Fprint(t.w, "\r")
}

// MoveCursorUp moves the cursor up n lines.
func (t *Terminal) MoveCursorUp(n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(t.w, "\x1b[%dA", n)
}

// MoveCursorDown moves the cursor down n lines.
func (t *Terminal) MoveCursorDown(n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(t.w, "\x1b[%dB", n)
}

// ReadKey blocks until input arrives and decodes it into a Key. The input is
// switched into raw mode for the duration of the read so individual
// keypresses arrive unbuffered and unechoed.
func (t *Terminal) ReadKey() (Key, error) {
	var restore func()
	if t.in != nil {
		fd := int(t.in.Fd())
		state, err := xterm.MakeRaw(fd)
		if err != nil {
			return Key{}, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		restore = func() { xterm.Restore(fd, state) }
	}
	var buf [32]byte
	n, err := t.r.Read(buf[:])
	if restore != nil {
		restore()
	}
	if err != nil {
		return Key{}, fmt.Errorf("failed to read key: %w", err)
	}
	return ParseKey(buf[:n]), nil
}
