package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/ghgists/internal/github"
)

// JSONWriter outputs the gists as a JSON array.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, gists []github.Gist) error {
	if gists == nil {
		gists = []github.Gist{}
	}
	data, err := json.MarshalIndent(gists, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
