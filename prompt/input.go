package prompt

import "github.com/kungfusheep/dirmenu/term"

// Input is an inline single-line text prompt. The line is redrawn in place
// as the user types; Enter confirms and Escape cancels.
type Input struct {
	theme   Theme
	prompt  string
	initial string
}

// NewInput creates a text prompt with the default theme.
func NewInput() *Input {
	return &Input{theme: DefaultTheme}
}

// Prompt sets the prompt text shown before the input.
func (in *Input) Prompt(p string) *Input { in.prompt = p; return in }

// Initial sets the starting value of the input.
func (in *Input) Initial(s string) *Input { in.initial = s; return in }

// Theme sets the widget styles.
func (in *Input) Theme(t Theme) *Input { in.theme = t; return in }

// render writes the current state of the input line.
func (in *Input) render(h term.Handle, value []rune) {
	h.WriteLine(in.theme.Prompt.Render(in.prompt+":") + " " + string(value))
}

// Interact runs the widget against the handle and blocks until the user
// confirms or cancels. On confirmation the line is rewritten with the final
// value and left behind; on cancellation it is erased.
func (in *Input) Interact(h term.Handle) (string, bool, error) {
	value := []rune(in.initial)
	in.render(h, value)
	for {
		k, err := h.ReadKey()
		if err != nil {
			return "", false, err
		}
		switch {
		case k.Type == term.KeyRune:
			value = append(value, k.Rune)
		case k.Type == term.KeyBackspace:
			if len(value) > 0 {
				value = value[:len(value)-1]
			}
		case k.Type == term.KeyEnter:
			h.ClearLastLines(1)
			h.WriteLine(in.theme.Prompt.Render(in.prompt+":") + " " + in.theme.Chosen.Render(string(value)))
			return string(value), true, nil
		case k.Type == term.KeyEscape || k.Type == term.KeyCtrlC:
			h.ClearLastLines(1)
			return "", false, nil
		default:
			continue
		}
		h.ClearLastLines(1)
		in.render(h, value)
	}
}
