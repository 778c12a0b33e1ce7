package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/ghgists/internal/github"
)

// Writer writes a gist listing in a specific format.
type Writer interface {
	Write(w io.Writer, gists []github.Gist) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteGists writes the listing to outPath, or to stdout when outPath is
// empty.
func WriteGists(gists []github.Gist, format, outPath string, stdout io.Writer) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = stdout
	}

	return writer.Write(w, gists)
}
