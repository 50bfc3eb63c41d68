package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultConfigYAML = `# duty roster configuration
year: 2019

# First week of the summer holidays. From this week on the sides swap
# parity. 0 swaps every eight weeks instead.
switch_week: 0

# csv, latex or xlsx
format: latex
output: schedule.tex

# fixed: always 52 weeks. iso: the ISO week count of the year.
week_policy: fixed

# LaTeX only
language: en
holiday_weeks: [1, 10, 28, 29, 30, 31, 32, 33, 34, 35, 52]
exam_weeks: []
header: header.tex
footer: footer.tex
strings_dir: .

rooms:
  - [A, B, C, D]
  - [E, F, G, H]
start_turn: [3, 1]
`

const defaultHeaderTeX = `\documentclass[a4paper]{article}
\usepackage[table]{xcolor}
\usepackage{amssymb}
\usepackage{tikz}
\usepackage[margin=1.5cm]{geometry}

\newcommand{\evencolor}{blue!10}
\newcommand{\oddcolor}{blue!20}
\newcommand{\examcolor}{orange!25}
\renewcommand{\check}{\hfill$\square$}
\newcommand{\tikzmark}[1]{\tikz[overlay,remember picture] \node (#1) {};}
\newif\ifsidenote

\begin{document}
\section*{TITLE}
\begin{tabular}{r l l | l l l l}
WEEK & FROM & TO & CHOREONE & CHORETWO & CHORETHREE & CHOREFOUR \\
\hline
`

const defaultFooterTeX = `\end{tabular}

\ifsidenote
\begin{tikzpicture}[overlay,remember picture]
\node[right] at (sidenote.east) {SWITCHNOTE};
\end{tikzpicture}
\fi

FOOTNOTE
\end{document}
`

const defaultStringsEN = `TITLE: Cleaning schedule
WEEK: Week
FROM: From
TO: To
CHOREONE: Kitchen
CHORETWO: Bathroom
CHORETHREE: Hallway
CHOREFOUR: Trash
SWITCHNOTE: Sides swap
FOOTNOTE: Tick the box when the chore is done.
`

const defaultStringsNL = `TITLE: Schoonmaakrooster
WEEK: Week
FROM: Van
TO: Tot
CHOREONE: Keuken
CHORETWO: Badkamer
CHORETHREE: Gang
CHOREFOUR: Afval
SWITCHNOTE: Wissel van kant
FOOTNOTE: Zet een vinkje als de taak gedaan is.
`

// InitWorkspace writes a starter config, LaTeX templates and dictionaries to
// dir. Existing files are left untouched. It returns the files it created.
func InitWorkspace(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("config: ensure %s: %w", dir, err)
	}
	files := []struct {
		name    string
		content string
	}{
		{DefaultFile, defaultConfigYAML},
		{"header.tex", defaultHeaderTeX},
		{"footer.tex", defaultFooterTeX},
		{"strings-en.yaml", defaultStringsEN},
		{"strings-nl.yaml", defaultStringsNL},
	}
	var created []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		ok, err := ensureFile(path, f.content)
		if err != nil {
			return created, fmt.Errorf("config: write %s: %w", path, err)
		}
		if ok {
			created = append(created, path)
		}
	}
	return created, nil
}

func ensureFile(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	return true, os.WriteFile(path, []byte(content), 0o644)
}
