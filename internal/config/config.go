// internal/config/config.go
//
// This package loads the roster configuration. A project directory holds a
// roster.yaml (or roster.toml) next to the LaTeX templates and the
// translation dictionaries; `roster init` writes a starter set.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/document"
	"github.com/kingrea/duty-roster/internal/render"
	"github.com/kingrea/duty-roster/internal/roster"
)

const (
	// DefaultFile is the config file looked up when none is given.
	DefaultFile = "roster.yaml"

	// StdoutPath writes the roster to standard output instead of a file.
	StdoutPath = "-"

	defaultYear = 2019
)

var defaultHolidayWeeks = []int{1, 10, 28, 29, 30, 31, 32, 33, 34, 35, 52}

// Config models roster.yaml.
type Config struct {
	Year         int        `yaml:"year" toml:"year"`
	SwitchWeek   int        `yaml:"switch_week" toml:"switch_week"`
	Format       string     `yaml:"format" toml:"format"`
	Output       string     `yaml:"output" toml:"output"`
	Language     string     `yaml:"language" toml:"language"`
	HolidayWeeks []int      `yaml:"holiday_weeks" toml:"holiday_weeks"`
	ExamWeeks    []int      `yaml:"exam_weeks,omitempty" toml:"exam_weeks,omitempty"`
	WeekPolicy   string     `yaml:"week_policy" toml:"week_policy"`
	Header       string     `yaml:"header" toml:"header"`
	Footer       string     `yaml:"footer" toml:"footer"`
	StringsDir   string     `yaml:"strings_dir" toml:"strings_dir"`
	Rooms        [][]string `yaml:"rooms,omitempty" toml:"rooms,omitempty"`
	StartTurn    []int      `yaml:"start_turn,omitempty" toml:"start_turn,omitempty"`

	// Path is the file the config was read from; empty when defaults are used.
	Path string `yaml:"-" toml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Year:         defaultYear,
		Format:       string(render.FormatLaTeX),
		Output:       "schedule.tex",
		Language:     "en",
		HolidayWeeks: slices.Clone(defaultHolidayWeeks),
		WeekPolicy:   string(calendar.PolicyFixed),
		Header:       "header.tex",
		Footer:       "footer.tex",
		StringsDir:   ".",
	}
}

// Load reads the config at path. A missing file is not an error: the defaults
// are returned with paths resolved against the file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	base := filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.normalize(base)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Path = path
	cfg.applyDefaults()
	cfg.normalize(base)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Year == 0 {
		c.Year = def.Year
	}
	if strings.TrimSpace(c.Format) == "" {
		c.Format = def.Format
	}
	if strings.TrimSpace(c.Output) == "" {
		c.Output = def.Output
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = def.Language
	}
	if strings.TrimSpace(c.WeekPolicy) == "" {
		c.WeekPolicy = def.WeekPolicy
	}
	if strings.TrimSpace(c.Header) == "" {
		c.Header = def.Header
	}
	if strings.TrimSpace(c.Footer) == "" {
		c.Footer = def.Footer
	}
	if strings.TrimSpace(c.StringsDir) == "" {
		c.StringsDir = def.StringsDir
	}
}

func (c *Config) normalize(base string) {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.WeekPolicy = strings.ToLower(strings.TrimSpace(c.WeekPolicy))
	c.Language = strings.TrimSpace(c.Language)
	c.Header = resolvePath(base, c.Header)
	c.Footer = resolvePath(base, c.Footer)
	c.StringsDir = resolvePath(base, c.StringsDir)
	if strings.TrimSpace(c.Output) != StdoutPath {
		c.Output = resolvePath(base, c.Output)
	}
	c.HolidayWeeks = sortedUnique(c.HolidayWeeks)
	c.ExamWeeks = sortedUnique(c.ExamWeeks)
}

// Validate reports the first invalid setting. Holiday and exam weeks are not
// range-checked; weeks outside the year simply never match.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := calendar.ParseWeekPolicy(c.WeekPolicy); err != nil {
		return err
	}
	if c.SwitchWeek < 0 {
		return fmt.Errorf("switch_week must be >= 0")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output is required")
	}
	if _, err := c.rooms(); err != nil {
		return err
	}
	if _, err := c.startTurn(); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() render.Format {
	f, _ := render.ParseFormat(c.Format)
	return f
}

// Plan builds the roster plan described by the config.
func (c *Config) Plan() (roster.Plan, error) {
	policy, err := calendar.ParseWeekPolicy(c.WeekPolicy)
	if err != nil {
		return roster.Plan{}, err
	}
	rooms, err := c.rooms()
	if err != nil {
		return roster.Plan{}, err
	}
	turn, err := c.startTurn()
	if err != nil {
		return roster.Plan{}, err
	}
	return roster.Plan{
		Year:       c.Year,
		Policy:     policy,
		Rooms:      rooms,
		StartTurn:  turn,
		SwitchWeek: c.SwitchWeek,
	}, nil
}

// Highlights returns the weeks that get special styling.
func (c *Config) Highlights() render.Highlights {
	return render.Highlights{
		Holidays:   slices.Clone(c.HolidayWeeks),
		Exams:      slices.Clone(c.ExamWeeks),
		SwitchWeek: c.SwitchWeek,
	}
}

// Templates returns the header and footer files.
func (c *Config) Templates() document.Templates {
	return document.Templates{Header: c.Header, Footer: c.Footer}
}

// DictionaryPath returns the translation file for lang.
func (c *Config) DictionaryPath(lang string) string {
	return document.DictionaryPath(c.StringsDir, lang)
}

// WritesStdout reports whether output goes to standard output.
func (c *Config) WritesStdout() bool {
	return c.Output == StdoutPath
}

// WatchedFiles lists the inputs whose change should trigger regeneration.
func (c *Config) WatchedFiles(lang string) []string {
	var files []string
	if c.Path != "" {
		files = append(files, c.Path)
	}
	if c.OutputFormat() == render.FormatLaTeX {
		files = append(files, c.Header, c.Footer, c.DictionaryPath(lang))
	}
	return files
}

func (c *Config) rooms() (roster.Rooms, error) {
	if len(c.Rooms) == 0 {
		return roster.DefaultRooms, nil
	}
	return roster.RoomsFromLists(c.Rooms)
}

func (c *Config) startTurn() ([roster.Sides]int, error) {
	var turn [roster.Sides]int
	if len(c.StartTurn) == 0 {
		return roster.DefaultStartTurn, nil
	}
	if len(c.StartTurn) != roster.Sides {
		return turn, fmt.Errorf("start_turn must list %d cursors, got %d", roster.Sides, len(c.StartTurn))
	}
	for side, t := range c.StartTurn {
		if t < 0 || t >= roster.RoomsPerSide {
			return turn, fmt.Errorf("start_turn[%d] must be in [0,%d)", side, roster.RoomsPerSide)
		}
		turn[side] = t
	}
	return turn, nil
}

func sortedUnique(weeks []int) []int {
	if len(weeks) == 0 {
		return nil
	}
	out := slices.Clone(weeks)
	slices.Sort(out)
	return slices.Compact(out)
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
