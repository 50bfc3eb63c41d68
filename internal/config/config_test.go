package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/render"
	"github.com/kingrea/duty-roster/internal/roster"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(filepath.Join(dir, DefaultFile))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Year != defaultYear {
		t.Fatalf("expected default year %d, got %d", defaultYear, c.Year)
	}
	if c.OutputFormat() != render.FormatLaTeX {
		t.Fatalf("expected latex default, got %s", c.Format)
	}
	if c.Header != filepath.Join(dir, "header.tex") {
		t.Fatalf("expected header resolved against %s, got %s", dir, c.Header)
	}
	if c.Path != "" {
		t.Fatalf("expected empty path for defaults, got %s", c.Path)
	}
	if len(c.HolidayWeeks) != len(defaultHolidayWeeks) {
		t.Fatalf("expected default holiday weeks, got %v", c.HolidayWeeks)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	dir := t.TempDir()
	configYAML := strings.TrimSpace(`
year: 2024
switch_week: 27
format: CSV
output: out/roster.csv
language: nl
week_policy: iso
holiday_weeks: [52, 1, 10, 10]
exam_weeks: [4, 5]
strings_dir: lang
rooms:
  - [1a, 1b, 1c, 1d]
  - [2a, 2b, 2c, 2d]
start_turn: [0, 2]
`)
	path := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(path, []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.OutputFormat() != render.FormatCSV {
		t.Fatalf("expected csv format, got %q", c.Format)
	}
	if c.Output != filepath.Join(dir, "out", "roster.csv") {
		t.Fatalf("expected output resolved, got %s", c.Output)
	}
	if got := c.HolidayWeeks; len(got) != 3 || got[0] != 1 || got[2] != 52 {
		t.Fatalf("expected sorted unique holidays, got %v", got)
	}
	if c.DictionaryPath("nl") != filepath.Join(dir, "lang", "strings-nl.yaml") {
		t.Fatalf("wrong dictionary path: %s", c.DictionaryPath("nl"))
	}
	plan, err := c.Plan()
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if plan.Policy != calendar.PolicyISO || plan.SwitchWeek != 27 || plan.Year != 2024 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.Rooms[1][2] != "2c" || plan.StartTurn != [roster.Sides]int{0, 2} {
		t.Fatalf("unexpected rooms or turn: %+v", plan)
	}
	h := c.Highlights()
	if !h.IsExam(5) || !h.IsHoliday(52) || h.SwitchWeek != 27 {
		t.Fatalf("unexpected highlights: %+v", h)
	}
}

func TestLoadParsesToml(t *testing.T) {
	dir := t.TempDir()
	configTOML := strings.TrimSpace(`
year = 2021
format = "xlsx"
output = "roster.xlsx"
holiday_weeks = [30, 31]
rooms = [["N1", "N2", "N3", "N4"], ["S1", "S2", "S3", "S4"]]
`)
	path := filepath.Join(dir, "roster.toml")
	if err := os.WriteFile(path, []byte(configTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Year != 2021 || c.OutputFormat() != render.FormatXLSX {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.Language != "en" {
		t.Fatalf("expected default language, got %q", c.Language)
	}
	plan, err := c.Plan()
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if plan.Rooms[0][0] != "N1" {
		t.Fatalf("expected toml rooms, got %v", plan.Rooms)
	}
	if plan.StartTurn != roster.DefaultStartTurn {
		t.Fatalf("expected default start turn, got %v", plan.StartTurn)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"format":      "format: pdf",
		"policy":      "week_policy: monthly",
		"switch week": "switch_week: -3",
		"rooms":       "rooms:\n  - [A, B, C, D]",
		"start turn":  "start_turn: [1, 4]",
		"syntax":      "year: [",
	}
	for name, body := range cases {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultFile)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error but got none", name)
		}
	}
}

func TestLanguageIsNotValidated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(path, []byte("language: klingon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unknown language must not fail config load: %v", err)
	}
	if c.Language != "klingon" {
		t.Fatalf("expected language kept as written, got %q", c.Language)
	}
}

func TestStdoutOutputIsNotResolved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(path, []byte("output: \"-\"\nformat: csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !c.WritesStdout() {
		t.Fatalf("expected stdout output, got %s", c.Output)
	}
	if files := c.WatchedFiles("en"); len(files) != 1 || files[0] != path {
		t.Fatalf("csv mode should only watch the config, got %v", files)
	}
}

func TestInitWorkspaceWritesStarterFiles(t *testing.T) {
	dir := t.TempDir()
	created, err := InitWorkspace(dir)
	if err != nil {
		t.Fatalf("InitWorkspace returned error: %v", err)
	}
	if len(created) != 5 {
		t.Fatalf("expected 5 files, got %v", created)
	}
	c, err := Load(filepath.Join(dir, DefaultFile))
	if err != nil {
		t.Fatalf("starter config must load: %v", err)
	}
	if c.Path == "" || c.Year != defaultYear {
		t.Fatalf("unexpected starter config: %+v", c)
	}

	created, err = InitWorkspace(dir)
	if err != nil {
		t.Fatalf("second InitWorkspace returned error: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("existing files must be kept, got %v", created)
	}
}
