// Nested menu demo: toggles, callbacks, and sub-menus with exit confirmation.
package main

import (
	"fmt"

	"github.com/kungfusheep/dirmenu"
)

func main() {
	dirmenu.Dir("Diralogue Test",
		dirmenu.Dir("Sub Menu",
			dirmenu.Confirmation("are you sure you want to quit?"),
			dirmenu.Toggle("Is this true?").TrueText("yes").FalseText("no"),
			dirmenu.Toggle("Is this true? but 2").TrueText("yes").FalseText("no"),
		),
		dirmenu.Dir("Second Sub Menu",
			dirmenu.Toggle("Another toggle"),
			dirmenu.Toggle("Another another toggle"),
			dirmenu.Dir("Extra Sub Menu",
				dirmenu.Toggle("secret toggle!"),
			),
			dirmenu.Func("Print Cool Stuff", func() { fmt.Println("Cool stuff!!") }),
		),
	).Run()
}
