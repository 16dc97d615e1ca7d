package prompt

import (
	"github.com/mattn/go-runewidth"

	"github.com/kungfusheep/dirmenu/term"
)

// Select is an inline selection list. It renders a prompt line followed by
// one line per item, moves a marker with the arrow keys (or j/k), skips
// disabled items during navigation, and never confirms a disabled index.
//
//	idx, ok, err := prompt.NewSelect().
//		Prompt("Deploy target").
//		Items([]string{"production", "staging", "local"}).
//		Default(1).
//		Clear(true).
//		Interact(handle)
//
// ok is false when the user cancelled with Escape or q. With Clear, the item
// lines are erased on exit and exactly the prompt line is left behind, with
// the cursor on the line below it.
type Select struct {
	theme    Theme
	prompt   string
	items    []string
	disabled []bool
	def      int
	clear    bool
	marker   string
}

// NewSelect creates a selection list with the default theme and marker.
func NewSelect() *Select {
	return &Select{theme: DefaultTheme, marker: "> "}
}

// Prompt sets the prompt line text.
func (s *Select) Prompt(p string) *Select { s.prompt = p; return s }

// Items sets the item labels, in display order.
func (s *Select) Items(items []string) *Select { s.items = items; return s }

// Disabled marks items as unselectable. The mask is indexed like the items;
// a short mask leaves the remaining items enabled.
func (s *Select) Disabled(mask []bool) *Select { s.disabled = mask; return s }

// Default sets the initially highlighted index. Out-of-range values are
// clamped, and a disabled default slides to the nearest enabled item.
func (s *Select) Default(i int) *Select { s.def = i; return s }

// Clear controls whether the item lines are erased on exit. The prompt line
// is always left behind.
func (s *Select) Clear(c bool) *Select { s.clear = c; return s }

// Theme sets the widget styles.
func (s *Select) Theme(t Theme) *Select { s.theme = t; return s }

// Marker sets the cursor marker string. Default is "> ".
func (s *Select) Marker(m string) *Select { s.marker = m; return s }

// enabled reports whether item i can be selected.
func (s *Select) enabled(i int) bool {
	return i >= len(s.disabled) || !s.disabled[i]
}

// seek returns the nearest enabled index moving from i in the given
// direction, or i unchanged when there is none.
func (s *Select) seek(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(s.items); j += dir {
		if s.enabled(j) {
			return j
		}
	}
	return i
}

// initialCursor clamps the default index into range and slides it to an
// enabled item. Returns -1 when nothing is selectable.
func (s *Select) initialCursor() int {
	if len(s.items) == 0 {
		return -1
	}
	cursor := s.def
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(s.items) {
		cursor = len(s.items) - 1
	}
	if s.enabled(cursor) {
		return cursor
	}
	if next := s.seek(cursor, 1); s.enabled(next) && next != cursor {
		return next
	}
	if prev := s.seek(cursor, -1); s.enabled(prev) && prev != cursor {
		return prev
	}
	return -1
}

// width returns the rendering width for the handle, defaulting to 80 for
// handles that cannot report one.
func width(h term.Handle) int {
	if sized, ok := h.(interface{ Width() int }); ok {
		if w := sized.Width(); w > 0 {
			return w
		}
	}
	return 80
}

// renderItems writes one line per item below the prompt line.
func (s *Select) renderItems(h term.Handle, cursor, w int) {
	pad := runewidth.StringWidth(s.marker)
	avail := w - pad
	if avail < 1 {
		avail = 1
	}
	for i, label := range s.items {
		label = runewidth.Truncate(label, avail, "…")
		switch {
		case i == cursor:
			h.WriteLine(s.theme.Cursor.Render(s.marker) + s.theme.Selected.Render(label))
		case !s.enabled(i):
			h.WriteLine(runewidth.FillLeft("", pad) + s.theme.Disabled.Render(label))
		default:
			h.WriteLine(runewidth.FillLeft("", pad) + s.theme.Item.Render(label))
		}
	}
}

// Interact runs the widget against the handle and blocks until the user
// confirms an index or cancels. It returns the index and true on
// confirmation, or the resting index and false on cancellation. Errors come
// only from the terminal read path and are fatal to interactive callers.
func (s *Select) Interact(h term.Handle) (int, bool, error) {
	h.WriteLine(s.theme.Prompt.Render(s.prompt))

	cursor := s.initialCursor()
	if cursor < 0 {
		// Nothing selectable. The prompt line stays, per the exit contract.
		return 0, false, nil
	}

	w := width(h)
	s.renderItems(h, cursor, w)

	for {
		k, err := h.ReadKey()
		if err != nil {
			return 0, false, err
		}

		prev := cursor
		switch {
		case k.Type == term.KeyUp || (k.Type == term.KeyRune && k.Rune == 'k'):
			cursor = s.seek(cursor, -1)
		case k.Type == term.KeyDown || (k.Type == term.KeyRune && k.Rune == 'j'):
			cursor = s.seek(cursor, 1)
		case k.Type == term.KeyHome:
			cursor = s.seek(-1, 1)
		case k.Type == term.KeyEnd:
			cursor = s.seek(len(s.items), -1)
		case k.Type == term.KeyEnter:
			s.finish(h)
			return cursor, true, nil
		case k.Type == term.KeyEscape || k.Type == term.KeyCtrlC ||
			(k.Type == term.KeyRune && k.Rune == 'q'):
			s.finish(h)
			return cursor, false, nil
		}

		if cursor != prev {
			h.ClearLastLines(len(s.items))
			s.renderItems(h, cursor, w)
		}
	}
}

// finish cleans up the rendered list on exit, honoring the clear flag.
func (s *Select) finish(h term.Handle) {
	if s.clear {
		h.ClearLastLines(len(s.items))
	}
}
