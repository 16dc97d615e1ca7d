package dirmenu

import (
	"fmt"

	"github.com/kungfusheep/dirmenu/prompt"
)

// MenuItem is the capability every page in a menu tree implements.
type MenuItem interface {
	// Name returns the label displayed in the parent menu.
	Name() string
	// Exec is called when the item is activated. It owns the terminal for
	// the duration of the call and should write through it; on return the
	// user is back in the parent menu.
	Exec(t *TrackedTerm)
	// Enabled reports whether the item can be selected. Disabled items are
	// shown but skipped over during navigation.
	Enabled() bool
}

// Directory is a navigable menu of MenuItems. It is itself a MenuItem, so
// directories nest to arbitrary depth. The selected index persists across
// invocations: re-entering a directory restores the last highlighted item.
type Directory struct {
	title            string
	prompt           string
	items            []MenuItem
	selected         int
	exitConfirmation string
	theme            prompt.Theme
}

// NewDirectory creates an empty directory. The prompt defaults to the title.
func NewDirectory(title string) *Directory {
	return &Directory{title: title, prompt: title, theme: prompt.DefaultTheme}
}

// Prompt sets a custom prompt to display when the menu executes.
func (d *Directory) Prompt(p string) *Directory { d.prompt = p; return d }

// Default sets the initially selected index.
func (d *Directory) Default(i int) *Directory { d.selected = i; return d }

// Confirmation sets a prompt to confirm before the menu exits. Without one,
// backing out of the menu exits immediately.
func (d *Directory) Confirmation(text string) *Directory {
	d.exitConfirmation = text
	return d
}

// Theme sets the widget theme used by this directory's prompts.
func (d *Directory) Theme(t prompt.Theme) *Directory { d.theme = t; return d }

// Item appends items to the menu. Insertion order is display order.
func (d *Directory) Item(items ...MenuItem) *Directory {
	d.items = append(d.items, items...)
	return d
}

// Items returns the menu's items in display order.
func (d *Directory) Items() []MenuItem { return d.items }

// Selected returns the persisted selected index.
func (d *Directory) Selected() int { return d.selected }

// Run prints the log header and runs the menu against stdout. It returns
// when the user exits the root menu.
func (d *Directory) Run() {
	t := Stdout()
	t.Handle().WriteLine("------Log------")
	d.Exec(t)
}

// Name returns the directory title.
func (d *Directory) Name() string { return d.title }

// Enabled is always true for directories.
func (d *Directory) Enabled() bool { return true }

// Exec drives the selection loop: present the items, and on a confirmed
// choice erase the page, append a log line recording the choice, and
// dispatch to the chosen item. Backing out exits the loop, via the exit
// confirmation when one is configured. Widget failures mean the terminal is
// unusable and panic; there is no headless fallback.
func (d *Directory) Exec(t *TrackedTerm) {
	for {
		t.LineBreak()
		t.LineBreak()

		labels := make([]string, len(d.items))
		disabled := make([]bool, len(d.items))
		for i, item := range d.items {
			labels[i] = item.Name()
			disabled[i] = !item.Enabled()
		}

		idx, ok, err := prompt.NewSelect().
			Prompt(d.prompt).
			Items(labels).
			Disabled(disabled).
			Default(d.selected).
			Clear(true).
			Theme(d.theme).
			Interact(t.Handle())
		if err != nil {
			panic(fmt.Errorf("menu %q: %w", d.title, err))
		}

		if !ok {
			t.Reset()
			if d.exitConfirmation == "" {
				return
			}
			yes, err := prompt.NewConfirm().
				Text(d.exitConfirmation).
				Theme(d.theme).
				Interact(t.Handle())
			if err != nil {
				panic(fmt.Errorf("menu %q: %w", d.title, err))
			}
			if yes {
				return
			}
			continue
		}

		d.selected = idx
		t.Reset()
		// The choice line is written around the tracker: it is log, not page.
		t.Handle().WriteLine(fmt.Sprintf("%s: %s", d.prompt, d.theme.Chosen.Render(labels[idx])))
		d.items[idx].Exec(t)
	}
}
