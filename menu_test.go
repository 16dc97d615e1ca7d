package dirmenu

import (
	"os"
	"strings"
	"testing"

	"github.com/kungfusheep/dirmenu/prompt"
	"github.com/kungfusheep/dirmenu/term"
)

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func countLines(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want {
			n++
		}
	}
	return n
}

func TestToggle(t *testing.T) {
	t.Run("LabelReflectsValue", func(t *testing.T) {
		tog := Toggle("Is this true?").TrueText("yes").FalseText("no")
		if got := tog.Name(); !strings.HasSuffix(got, ": no") {
			t.Errorf("expected label ending in ': no', got %q", got)
		}
		tog.Exec(nil)
		if got := tog.Name(); !strings.HasSuffix(got, ": yes") {
			t.Errorf("expected label ending in ': yes' after exec, got %q", got)
		}
		tog.Exec(nil)
		if got := tog.Name(); !strings.HasSuffix(got, ": no") {
			t.Errorf("expected label back to ': no' after second exec, got %q", got)
		}
	})

	t.Run("ValueOption", func(t *testing.T) {
		tog := Toggle("opt").Value(true)
		if !tog.Get() {
			t.Errorf("expected true")
		}
		if got := tog.Name(); got != "opt: true" {
			t.Errorf("expected %q, got %q", "opt: true", got)
		}
	})

	t.Run("AlwaysEnabled", func(t *testing.T) {
		if !Toggle("x").Enabled() {
			t.Errorf("expected toggles to be enabled")
		}
	})
}

func TestText(t *testing.T) {
	txt := Text("--- section ---")
	if txt.Enabled() {
		t.Errorf("expected text items to be disabled")
	}
	if txt.Name() != "--- section ---" {
		t.Errorf("unexpected name %q", txt.Name())
	}
	txt.Exec(nil) // must be a no-op
}

func TestFunc(t *testing.T) {
	ran := false
	fn := Func("go", func() { ran = true })
	if !fn.Enabled() {
		t.Errorf("expected func items to be enabled")
	}
	fn.Exec(nil)
	if !ran {
		t.Errorf("expected callback to run")
	}
	Func("nil", nil).Exec(nil) // nil callback must not panic
}

func TestDirectorySelectionLoop(t *testing.T) {
	t.Run("ChooseThenExit", func(t *testing.T) {
		tog := Toggle("t")
		d := NewDirectory("Main").Theme(prompt.NoColor).Item(tog)
		f := &fakeHandle{keys: []term.Key{key(term.KeyEnter), key(term.KeyEscape)}}

		d.Exec(Track(f))

		if !tog.Get() {
			t.Errorf("expected chosen toggle to flip")
		}
		if d.Selected() != 0 {
			t.Errorf("expected selected index 0, got %d", d.Selected())
		}
		if !containsLine(f.lines, "Main: t: false") {
			t.Errorf("expected choice log line, got %v", f.lines)
		}
	})

	t.Run("DisabledDefaultNeverChosen", func(t *testing.T) {
		tog := Toggle("t")
		d := NewDirectory("Main").Theme(prompt.NoColor).
			Item(Text("header"), tog).
			Default(0)
		f := &fakeHandle{keys: []term.Key{key(term.KeyEnter), key(term.KeyEscape)}}

		d.Exec(Track(f))

		if !tog.Get() {
			t.Errorf("expected the enabled item to be chosen instead")
		}
		if d.Selected() != 1 {
			t.Errorf("expected selection to slide past the disabled default, got %d", d.Selected())
		}
	})

	t.Run("CancelWithoutConfirmationTerminates", func(t *testing.T) {
		d := NewDirectory("Main").Theme(prompt.NoColor).Item(Toggle("t"))
		f := &fakeHandle{keys: []term.Key{key(term.KeyEscape)}}
		d.Exec(Track(f))
		if len(f.keys) != 0 {
			t.Errorf("expected all keys consumed")
		}
	})

	t.Run("ConfirmationDeclinedKeepsDisplaying", func(t *testing.T) {
		tog := Toggle("t")
		d := NewDirectory("Main").Theme(prompt.NoColor).
			Confirmation("Are you sure?").
			Item(tog)
		f := &fakeHandle{keys: []term.Key{
			key(term.KeyEscape), runeKey('n'), // back out, then stay
			key(term.KeyEscape), runeKey('y'), // back out for real
		}}

		d.Exec(Track(f))

		if got := countLines(f.lines, "Are you sure? (y/n)"); got != 2 {
			t.Errorf("expected the confirmation to be asked twice, got %d", got)
		}
		if tog.Get() {
			t.Errorf("expected toggle untouched")
		}
		if d.Selected() != 0 {
			t.Errorf("expected selected unchanged, got %d", d.Selected())
		}
	})

	t.Run("EmptyDirectoryIsALegalLeaf", func(t *testing.T) {
		d := NewDirectory("Empty").Theme(prompt.NoColor)
		f := &fakeHandle{}
		d.Exec(Track(f)) // nothing selectable: returns without reading a key
	})

	t.Run("SelectionPersistsAcrossInvocations", func(t *testing.T) {
		a, b := Toggle("a"), Toggle("b")
		d := NewDirectory("Main").Theme(prompt.NoColor).Item(a, b)
		f := &fakeHandle{keys: []term.Key{
			key(term.KeyDown), key(term.KeyEnter), key(term.KeyEscape),
		}}
		d.Exec(Track(f))
		if d.Selected() != 1 {
			t.Fatalf("expected selected 1 after first run, got %d", d.Selected())
		}

		// Re-entering starts from the persisted index.
		f2 := &fakeHandle{keys: []term.Key{key(term.KeyEnter), key(term.KeyEscape)}}
		d.Exec(Track(f2))
		if a.Get() {
			t.Errorf("expected first toggle untouched")
		}
		if b.Name() != "b: false" {
			t.Errorf("expected second toggle flipped twice, got %q", b.Name())
		}
	})
}

func TestDirectoryParagraphEndToEnd(t *testing.T) {
	const footer = "  Press 's' to save to a file, or 'q' to go back"
	page := Paragraph("Lorem Ipsum").
		Body("Lorem Ipsum is a dummy text used in the printing and typesetting industry.").
		Body("It is a long established fact that the reader will be distracted.")
	d := NewDirectory("Main Menu").Theme(prompt.NoColor).Item(page)

	f := &fakeHandle{keys: []term.Key{
		key(term.KeyEnter), // open the page
		runeKey('x'),       // unrecognized: redraw
		runeKey('q'),       // back to the menu
		key(term.KeyEscape),
	}}
	d.Exec(Track(f))

	if !containsLine(f.lines, "Lorem Ipsum") {
		t.Errorf("expected the title to be displayed")
	}
	if !containsLine(f.lines, "Lorem Ipsum is a dummy text used in the printing and typesetting industry.") {
		t.Errorf("expected the first paragraph to be displayed")
	}
	if got := countLines(f.lines, footer); got != 2 {
		t.Errorf("expected footer rendered twice (initial + redraw), got %d", got)
	}
}

func TestParagraphSave(t *testing.T) {
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})

	page := Paragraph("Lorem Ipsum").Body("body text here")
	f := &fakeHandle{keys: []term.Key{runeKey('s'), runeKey('q')}}
	page.Exec(Track(f))

	data, err := os.ReadFile("lorem-ipsum.txt")
	if err != nil {
		t.Fatalf("expected saved file: %v", err)
	}
	if !strings.Contains(string(data), "body text here") {
		t.Errorf("expected body in saved file, got %q", data)
	}
	if !containsLine(f.lines, `saved "Lorem Ipsum" to lorem-ipsum.txt`) {
		t.Errorf("expected save log line, got %v", f.lines)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Lorem Ipsum":    "lorem-ipsum",
		"Hello, World!":  "hello-world",
		"  spaced  out ": "spaced-out",
		"plain":          "plain",
	}
	for in, want := range cases {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
