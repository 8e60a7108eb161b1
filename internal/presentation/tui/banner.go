package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the pulsenet banner to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	s1 := out.String("             _                 _   ").Foreground(out.Color("#818cf8"))
	s2 := out.String("  _ __ _  _ | | ___ ___ _ _   | |_ ").Foreground(out.Color("#a78bfa"))
	s3 := out.String(" | '_ \\ || || |(_-</ -_) ' \\  |  _|").Foreground(out.Color("#c084fc"))
	s4 := out.String(" | .__/\\_,_||_|/__/\\___|_||_|  \\__|").Foreground(out.Color("#e879f9"))
	s5 := out.String(" |_|").Foreground(out.Color("#f472b6"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w, s4)
	fmt.Fprintf(w, "%s %s\n", s5, out.String("v"+version).Faint())
	fmt.Fprintln(w)
}
