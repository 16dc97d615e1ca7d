// Paragraph demo: an informational page with save-to-file and back keys.
package main

import "github.com/kungfusheep/dirmenu"

func main() {
	dirmenu.Dir("Main Menu",
		dirmenu.Confirmation("Leave the main menu?"),
		dirmenu.Paragraph("Lorem Ipsum").
			Body("Lorem Ipsum is a dummy text used in the printing and typesetting industry. It "+
				"has been the industry standard dummy text since the 1500s. It was popularized in the 1960s "+
				"with the release of Letraset sheets containing Lorem Ipsum passages.").
			Body("It is a long established fact that the reader will be distracted by the content "+
				"of a page when looking at its layout. The point of reading lorem ipsum is that it has a "+
				"more-or-less normal distribution of letters, as opposed to reading 'Content here, content "+
				"here', which looks like readable english.").
			Body("There are many variations of lorem ipsum available, but the majority have been "+
				"altered in some form, by injected humor or randomized words. If you are going to use a "+
				"passage of lorem ipsum, be sure there isn't anything embarrassing hidden in the middle of "+
				"the text."),
		dirmenu.Text("---"),
		dirmenu.Func("Say Hi", func() { println("hi!") }),
	).Run()
}
