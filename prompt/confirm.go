package prompt

import "github.com/kungfusheep/dirmenu/term"

// Confirm is an inline yes/no question. It renders a single line, reads keys
// until it has an answer, then rewrites the line with the answer and leaves
// it behind as a record of the decision.
type Confirm struct {
	theme Theme
	text  string
	def   bool
}

// NewConfirm creates a confirmation with the default theme, defaulting to yes.
func NewConfirm() *Confirm {
	return &Confirm{theme: DefaultTheme, def: true}
}

// Text sets the question text.
func (c *Confirm) Text(t string) *Confirm { c.text = t; return c }

// Default sets the answer chosen when Enter is pressed alone.
func (c *Confirm) Default(d bool) *Confirm { c.def = d; return c }

// Theme sets the widget styles.
func (c *Confirm) Theme(t Theme) *Confirm { c.theme = t; return c }

// Interact runs the widget against the handle and blocks until the user
// answers. y/Y answers yes, n/N answers no, Enter takes the default, and
// Escape answers no.
func (c *Confirm) Interact(h term.Handle) (bool, error) {
	h.WriteLine(c.theme.Prompt.Render(c.text) + " " + c.theme.Help.Render("(y/n)"))
	for {
		k, err := h.ReadKey()
		if err != nil {
			return false, err
		}
		switch {
		case k.Type == term.KeyRune && (k.Rune == 'y' || k.Rune == 'Y'):
			c.answer(h, true)
			return true, nil
		case k.Type == term.KeyRune && (k.Rune == 'n' || k.Rune == 'N'):
			c.answer(h, false)
			return false, nil
		case k.Type == term.KeyEnter:
			c.answer(h, c.def)
			return c.def, nil
		case k.Type == term.KeyEscape || k.Type == term.KeyCtrlC:
			c.answer(h, false)
			return false, nil
		}
	}
}

// answer rewrites the question line with the chosen answer.
func (c *Confirm) answer(h term.Handle, yes bool) {
	text := "no"
	if yes {
		text = "yes"
	}
	h.ClearLastLines(1)
	h.WriteLine(c.theme.Prompt.Render(c.text) + " " + c.theme.Chosen.Render(text))
}
