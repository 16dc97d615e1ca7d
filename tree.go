package dirmenu

// Declarative tree construction. Dir builds a Directory from its children in
// one expression; nested Dir calls complete innermost-first, so the tree is
// assembled leaves-up exactly as the builder API would be called by hand.
//
//	dirmenu.Dir("Diralogue Test",
//		dirmenu.Dir("Sub Menu",
//			dirmenu.Confirmation("are you sure you want to quit?"),
//			dirmenu.Toggle("Is this true?").TrueText("yes").FalseText("no"),
//		),
//		dirmenu.Func("Print Cool Stuff", func() { fmt.Println("Cool stuff!!") }),
//	).Run()

// DirOption configures a Directory within a Dir declaration.
type DirOption func(*Directory)

// Default sets the initially selected index.
func Default(i int) DirOption {
	return func(d *Directory) { d.Default(i) }
}

// Confirmation sets the exit-confirmation prompt text.
func Confirmation(text string) DirOption {
	return func(d *Directory) { d.Confirmation(text) }
}

// Prompt sets a custom prompt.
func Prompt(p string) DirOption {
	return func(d *Directory) { d.Prompt(p) }
}

// Dir declares a directory. Children may be MenuItems (including nested Dir
// results) and DirOptions, in any order; item order is display order.
// Anything else is ignored.
func Dir(title string, children ...any) *Directory {
	d := NewDirectory(title)
	for _, child := range children {
		switch v := child.(type) {
		case DirOption:
			v(d)
		case MenuItem:
			d.Item(v)
		}
	}
	return d
}
