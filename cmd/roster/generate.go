package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/config"
	"github.com/kingrea/duty-roster/internal/document"
	"github.com/kingrea/duty-roster/internal/render"
	"github.com/kingrea/duty-roster/internal/roster"
	"github.com/kingrea/duty-roster/internal/watch"
)

// configFlags are the settings every roster-producing command accepts.
type configFlags struct {
	path       string
	year       int
	format     string
	output     string
	language   string
	switchWeek int
	policy     string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "config", "c", config.DefaultFile, "Config file (.yaml or .toml)")
	cmd.Flags().IntVarP(&f.year, "year", "y", 0, "Roster year")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: csv, latex or xlsx")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file, or - for stdout")
	cmd.Flags().StringVarP(&f.language, "lang", "l", "", "Language tag (en, nl)")
	cmd.Flags().IntVar(&f.switchWeek, "switch-week", 0, "Week from which the sides swap (0 = every 8 weeks)")
	cmd.Flags().StringVar(&f.policy, "policy", "", "Week policy: fixed or iso")
}

// load reads the config file and applies the flags the user set explicitly.
// A config file named with --config must exist; the default one may not.
func (f *configFlags) load(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s does not exist", f.path)
		}
	}
	cfg, err := config.Load(f.path)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("year") {
		cfg.Year = f.year
	}
	if flags.Changed("format") {
		cfg.Format = f.format
		if !flags.Changed("output") {
			cfg.Output = outputFor(cfg.Output, f.format)
		}
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("lang") {
		cfg.Language = f.language
	}
	if flags.Changed("switch-week") {
		cfg.SwitchWeek = f.switchWeek
	}
	if flags.Changed("policy") {
		cfg.WeekPolicy = f.policy
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

var formatExt = map[render.Format]string{
	render.FormatCSV:   ".csv",
	render.FormatLaTeX: ".tex",
	render.FormatXLSX:  ".xlsx",
}

// outputFor swaps the extension of the configured output for the one format
// produces. Standard output and unknown formats are left alone.
func outputFor(output, format string) string {
	f, err := render.ParseFormat(format)
	if err != nil || output == config.StdoutPath {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + formatExt[f]
}

func newGenerateCmd() *cobra.Command {
	var (
		flags       configFlags
		watchInputs bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the roster for a year",
		Long: `Computes the room rotation for every week of the year and writes it in the
configured format. LaTeX output is wrapped in the header and footer templates
with the language dictionary applied.

Example:
  roster generate --year 2024 --format csv --output -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := generate(cfg, out, logger); err != nil {
				return err
			}
			if !watchInputs {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchAndRegenerate(ctx, cmd, &flags, cfg, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&watchInputs, "watch", "w", false, "Regenerate when the config, templates or dictionary change")
	return cmd
}

func watchAndRegenerate(ctx context.Context, cmd *cobra.Command, flags *configFlags, cfg *config.Config, out io.Writer) error {
	files := watchedFiles(cfg)
	var w *watch.Watcher
	w, err := watch.New(files, watch.DefaultDebounce, logger, func(context.Context) error {
		next, err := flags.load(cmd)
		if err != nil {
			return err
		}
		// A config edit may point at other templates or another dictionary.
		if err := w.Track(watchedFiles(next)); err != nil {
			return err
		}
		return generate(next, out, logger)
	})
	if err != nil {
		return err
	}
	logger.Info("watching inputs", zap.Strings("files", files))
	return w.Run(ctx)
}

func watchedFiles(cfg *config.Config) []string {
	loc, _ := calendar.ResolveLocale(cfg.Language)
	return cfg.WatchedFiles(loc.Tag)
}

// generate renders the configured roster and writes it to the configured
// output. The whole document is rendered before the output file is touched,
// so a missing template never leaves a truncated file behind.
func generate(cfg *config.Config, stdout io.Writer, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}
	gen, err := roster.NewGenerator(plan)
	if err != nil {
		return err
	}

	format := cfg.OutputFormat()
	loc, matched := calendar.ResolveLocale(cfg.Language)
	if !matched && format != render.FormatCSV {
		log.Warn("unrecognized language, falling back to English",
			zap.String("language", cfg.Language))
	}

	var buf bytes.Buffer
	switch format {
	case render.FormatCSV:
		err = gen.Write(&buf, render.Plain{})
	case render.FormatLaTeX:
		err = writeLaTeX(&buf, cfg, gen, loc)
	case render.FormatXLSX:
		err = render.Workbook{Locale: loc, Highlights: cfg.Highlights()}.Write(&buf, gen.Weeks())
	default:
		err = fmt.Errorf("unsupported format %q", cfg.Format)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(cfg, stdout, buf.Bytes()); err != nil {
		return err
	}
	log.Info("roster generated",
		zap.Int("year", plan.Year),
		zap.String("format", string(format)),
		zap.Int("weeks", calendar.WeekCount(plan.Year, plan.Policy)),
		zap.String("output", cfg.Output))
	return nil
}

func writeLaTeX(w io.Writer, cfg *config.Config, gen *roster.Generator, loc calendar.Locale) error {
	dict, err := document.LoadDictionary(cfg.DictionaryPath(loc.Tag))
	if err != nil {
		return err
	}
	rows := render.LaTeX{Locale: loc, Highlights: cfg.Highlights()}
	return document.Assemble(w, cfg.Templates(), dict, func(body io.Writer) error {
		return gen.Write(body, rows)
	})
}

func writeOutput(cfg *config.Config, stdout io.Writer, data []byte) error {
	if cfg.WritesStdout() {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
