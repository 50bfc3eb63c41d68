package document

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAssembleSubstitutesHeaderAndFooter(t *testing.T) {
	dir := t.TempDir()
	tpl := Templates{
		Header: writeFile(t, dir, "header.tex", "\\section*{TITLE}\n\\begin{tabular}{WEEK}\n"),
		Footer: writeFile(t, dir, "footer.tex", "\\end{tabular}\nNOTE"),
	}
	dict, err := ParseDictionary([]byte("TITLE: Schoonmaakrooster\nWEEK: Week\nNOTE: Fijne vakantie\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Assemble(&buf, tpl, dict, func(w io.Writer) error {
		_, err := io.WriteString(w, "1 & row \\\\\n")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t,
		"\\section*{Schoonmaakrooster}\n\\begin{tabular}{Week}\n1 & row \\\\\n\\end{tabular}\nFijne vakantie",
		buf.String())
}

func TestAssembleMissingTemplateIsFatal(t *testing.T) {
	dir := t.TempDir()
	tpl := Templates{
		Header: writeFile(t, dir, "header.tex", "head\n"),
		Footer: filepath.Join(dir, "missing.tex"),
	}
	var buf bytes.Buffer
	err := Assemble(&buf, tpl, nil, func(io.Writer) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAssembleStopsOnBodyError(t *testing.T) {
	dir := t.TempDir()
	tpl := Templates{
		Header: writeFile(t, dir, "header.tex", "head\n"),
		Footer: writeFile(t, dir, "footer.tex", "foot\n"),
	}
	var buf bytes.Buffer
	err := Assemble(&buf, tpl, nil, func(io.Writer) error { return io.ErrShortWrite })
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, "head\n", buf.String())
}
