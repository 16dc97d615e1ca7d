package dirmenu

import (
	"fmt"
	"os"
	"strings"

	"github.com/kungfusheep/dirmenu/term"
)

// ParagraphC displays a titled page of text paragraphs with a footer of key
// hints. 'q' returns to the parent menu and 's' saves the text to a file in
// the working directory.
type ParagraphC struct {
	title      string
	paragraphs []string
}

// Paragraph creates a paragraph page with the given title.
func Paragraph(title string) *ParagraphC {
	return &ParagraphC{title: title}
}

// Body appends a paragraph of text.
func (p *ParagraphC) Body(text string) *ParagraphC {
	p.paragraphs = append(p.paragraphs, text)
	return p
}

// Name returns the page title.
func (p *ParagraphC) Name() string { return p.title }

// Enabled is always true for paragraphs.
func (p *ParagraphC) Enabled() bool { return true }

// Exec renders the page and waits for a key. Unrecognized keys redraw the
// page in place.
func (p *ParagraphC) Exec(t *TrackedTerm) {
	for {
		t.WriteLine(p.title)
		t.LineBreak()
		for _, body := range p.paragraphs {
			t.WriteLine(body)
			t.LineBreak()
		}
		t.LineBreak()
		t.WriteLine("  Press 's' to save to a file, or 'q' to go back")

		k, err := t.ReadKey()
		if err != nil {
			panic(fmt.Errorf("paragraph %q: %w", p.title, err))
		}
		t.Reset()
		if k.Type != term.KeyRune {
			continue
		}
		switch k.Rune {
		case 'q':
			return
		case 's':
			// The outcome line is log, not page.
			if path, err := p.save(); err != nil {
				t.Handle().WriteLine(fmt.Sprintf("failed to save %q: %v", p.title, err))
			} else {
				t.Handle().WriteLine(fmt.Sprintf("saved %q to %s", p.title, path))
			}
		}
	}
}

// save writes the page text to a file named after the title and returns the
// path.
func (p *ParagraphC) save() (string, error) {
	path := slug(p.title) + ".txt"
	var b strings.Builder
	b.WriteString(p.title + "\n")
	for _, body := range p.paragraphs {
		b.WriteString("\n" + body + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// slug lowercases a title and collapses runs of non-alphanumerics to dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ToggleC is a boolean menu entry. Activating it flips the value; the parent
// menu re-renders the list, which picks up the new label. The display label
// is cached and recomputed on every mutation so Name stays cheap.
type ToggleC struct {
	title     string
	display   string
	value     bool
	trueText  string
	falseText string
}

// Toggle creates a toggle with the given title, labelled "true"/"false" and
// starting false.
func Toggle(title string) *ToggleC {
	t := &ToggleC{title: title, trueText: "true", falseText: "false"}
	t.updateDisplay()
	return t
}

// Value sets the current value.
func (t *ToggleC) Value(v bool) *ToggleC {
	t.value = v
	t.updateDisplay()
	return t
}

// TrueText sets the label shown when the value is true.
func (t *ToggleC) TrueText(text string) *ToggleC {
	t.trueText = text
	t.updateDisplay()
	return t
}

// FalseText sets the label shown when the value is false.
func (t *ToggleC) FalseText(text string) *ToggleC {
	t.falseText = text
	t.updateDisplay()
	return t
}

// Get returns the current value.
func (t *ToggleC) Get() bool { return t.value }

func (t *ToggleC) updateDisplay() {
	text := t.falseText
	if t.value {
		text = t.trueText
	}
	t.display = fmt.Sprintf("%s: %s", t.title, text)
}

// Name returns the cached "title: label" display string.
func (t *ToggleC) Name() string { return t.display }

// Exec flips the value. It writes nothing; the parent menu re-renders.
func (t *ToggleC) Exec(*TrackedTerm) {
	t.value = !t.value
	t.updateDisplay()
}

// Enabled is always true for toggles.
func (t *ToggleC) Enabled() bool { return true }

// TextC is a display-only entry: a separator or header within a menu list.
// It can never be selected.
type TextC struct {
	content string
}

// Text creates a display-only entry.
func Text(content string) *TextC {
	return &TextC{content: content}
}

// Name returns the display text.
func (t *TextC) Name() string { return t.content }

// Exec does nothing.
func (t *TextC) Exec(*TrackedTerm) {}

// Enabled is always false for text entries.
func (t *TextC) Enabled() bool { return false }

// FuncC runs a stored callback when activated. Anything the callback prints
// goes to the log, not the page.
type FuncC struct {
	title string
	fn    func()
}

// Func creates a callback entry.
func Func(title string, fn func()) *FuncC {
	return &FuncC{title: title, fn: fn}
}

// Name returns the entry title.
func (f *FuncC) Name() string { return f.title }

// Exec invokes the callback.
func (f *FuncC) Exec(*TrackedTerm) {
	if f.fn != nil {
		f.fn()
	}
}

// Enabled is always true for callbacks.
func (f *FuncC) Enabled() bool { return true }
