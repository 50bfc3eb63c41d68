package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// CopyTemplate streams the template at path to w, applying dict to each line.
func CopyTemplate(w io.Writer, path string, dict *Dictionary) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("document: open template %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(w, dict.Apply(line)); werr != nil {
				return fmt.Errorf("document: write %s: %w", path, werr)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("document: read template %s: %w", path, err)
		}
	}
}

// Templates names the files that surround the rendered body.
type Templates struct {
	Header string
	Footer string
}

// Assemble writes the header, the body produced by body, and the footer.
func Assemble(w io.Writer, t Templates, dict *Dictionary, body func(io.Writer) error) error {
	if err := CopyTemplate(w, t.Header, dict); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	return CopyTemplate(w, t.Footer, dict)
}
