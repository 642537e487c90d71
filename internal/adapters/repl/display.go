package repl

import (
	"fmt"
	"io"
	"strings"

	"cafe/internal/console"
)

// divider underlines each category heading while browsing.
var divider = strings.Repeat("-", 25)

// PrintGreeting writes the banner shown before connecting.
func PrintGreeting(w io.Writer) {
	stars := strings.Repeat("*", 55)
	fmt.Fprintf(w, "\n\n%s\n              User Interface      \t               \n%s\n\n", stars, stars)
}

func printMenu(con *console.Console, m menu) {
	con.Printf("\n%s\n", m.title)
	con.Println("---------")
	for _, opt := range m.options {
		if m.dotted && opt.choice == 9 {
			con.Println(".........................")
		}
		con.Printf("%d. %s\n", opt.choice, opt.label)
	}
}

func itemCount(n int) string {
	return fmt.Sprintf("(%d items)", n)
}
