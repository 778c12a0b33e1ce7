package output

import (
	"fmt"
	"io"

	"github.com/dshills/ghgists/internal/github"
)

// Separator precedes the descriptions in text output.
const Separator = "----"

// TextWriter prints the separator and then one line per gist that has a
// description. Gists without one are skipped.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, gists []github.Gist) error {
	ew := &errWriter{w: w}
	ew.println(Separator)
	for _, g := range gists {
		if g.Description != "" {
			ew.println(g.Description)
		}
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
