package dirmenu

import (
	"fmt"
	"os"
	"strings"
)

// Capture redirects process stdout into a background reader until Stop is
// called. It exists for test setup/teardown around menu output and must not
// run while a live terminal is being rendered: the reader goroutine and the
// interactive loop would fight over stdout.
type Capture struct {
	orig *os.File
	w    *os.File
	out  chan string
}

// StartCapture swaps os.Stdout for a pipe and starts a goroutine draining it
// into a bounded channel. Call Stop to restore stdout and collect the text.
func StartCapture() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create capture pipe: %w", err)
	}
	c := &Capture{orig: os.Stdout, w: w, out: make(chan string, 64)}
	os.Stdout = w

	go func() {
		defer close(c.out)
		buf := make([]byte, 4096)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				c.out <- string(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	return c, nil
}

// Stop restores stdout, joins the reader, and returns everything captured.
func (c *Capture) Stop() string {
	os.Stdout = c.orig
	c.w.Close()
	var b strings.Builder
	for chunk := range c.out {
		b.WriteString(chunk)
	}
	return b.String()
}
