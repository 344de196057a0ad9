// Package simulate parses the simulate command flags and runs batches of
// full-degree simulations or a single Lua scenario.
package simulate

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"

	"github.com/rhyrak/campus-sim/internal/catalog"
	"github.com/rhyrak/campus-sim/internal/platform/config"
	"github.com/rhyrak/campus-sim/internal/scenario"
	"github.com/rhyrak/campus-sim/internal/sim"
	"github.com/rhyrak/campus-sim/internal/storage/sqlite"
	"github.com/rhyrak/campus-sim/pkg/model"
)

type Config struct {
	Track      string `env:"CAMPUS_TRACK" envDefault:"science"`
	Background string `env:"CAMPUS_BACKGROUND" envDefault:"ok"`
	Route      string `env:"CAMPUS_ROUTE"`
	Seed       int64  `env:"CAMPUS_SEED"`
	Runs       int    `env:"CAMPUS_RUNS" envDefault:"1"`
	Parallel   int    `env:"CAMPUS_PARALLEL" envDefault:"4"`
	DBPath     string `env:"CAMPUS_DB_PATH"`
	Scenario   string `env:"CAMPUS_SCENARIO"`
	Lang       string `env:"CAMPUS_LANG" envDefault:"en"`
	Verbose    bool   `env:"CAMPUS_VERBOSE"`
}

// ParseConfig reads the environment first; flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Track, "track", cfg.Track, "Track: science, medicine, business or arts")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "Family background: poor, ok, mid or rich")
	fs.StringVar(&cfg.Route, "route", cfg.Route, "Route: research, career, abroad or empty")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Base seed; run i uses seed+i. 0 picks one from the clock")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "Number of simulations")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "Simulations running at once")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite archive path; empty disables archiving")
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "Lua scenario file to run instead of a batch")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Language tag for number formatting")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log weekly detail")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type runResult struct {
	ID      string
	Seed    int64
	Summary *sim.Summary
}

// Run executes the configured batch, or the scenario when one is set,
// prints a report to out and logs to errOut.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	logger := config.NewLogger(errOut, cfg.Verbose)
	p := message.NewPrinter(config.Language(cfg.Lang))

	var store *sqlite.Store
	if cfg.DBPath != "" {
		var err error
		if store, err = sqlite.Open(cfg.DBPath); err != nil {
			return err
		}
		defer store.Close()
	}

	if cfg.Scenario != "" {
		return runScenario(ctx, cfg.Scenario, store, logger, p, out)
	}

	results, err := runBatch(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if store != nil {
		for _, r := range results {
			if _, err := store.SaveRun(ctx, sqlite.RecordFromSummary(r.ID, r.Seed, r.Summary)); err != nil {
				return fmt.Errorf("archive run %s: %w", r.ID, err)
			}
		}
		logger.Info("runs archived", "path", cfg.DBPath, "runs", len(results))
	}
	printReport(p, out, results)
	return nil
}

func runBatch(ctx context.Context, cfg Config, logger *slog.Logger) ([]runResult, error) {
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("runs must be at least 1, got %d", cfg.Runs)
	}
	parallel := cfg.Parallel
	if parallel < 1 {
		parallel = 1
	}
	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
		logger.Info("picked base seed", "seed", base)
	}

	opts := sim.Options{
		Track:      catalog.NormalizeTrack(cfg.Track),
		Background: model.ParseBackground(cfg.Background),
		Route:      model.ParseRoute(cfg.Route),
		AutoEnroll: true,
	}
	results := make([]runResult, cfg.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range cfg.Runs {
		g.Go(func() error {
			id := uuid.NewString()
			o := opts
			o.Seed = base + int64(i)
			o.Logger = logger.With("run", id)
			e, err := sim.NewEngine(o)
			if err != nil {
				return err
			}
			sum, err := e.Run(gctx, nil, nil)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = runResult{ID: id, Seed: o.Seed, Summary: sum}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, path string, store *sqlite.Store, logger *slog.Logger, p *message.Printer, out io.Writer) error {
	sc, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}
	res, runErr := scenario.Run(ctx, sc, logger)
	if res == nil {
		return runErr
	}
	if store != nil && res.Summary != nil {
		if _, err := store.SaveRun(ctx, sqlite.RecordFromSummary("", 0, res.Summary)); err != nil {
			return fmt.Errorf("archive scenario: %w", err)
		}
	}
	if len(res.Failures) == 0 {
		p.Fprintf(out, "scenario %q passed\n", res.Name)
	} else {
		p.Fprintf(out, "scenario %q failed (%d)\n", res.Name, len(res.Failures))
		for _, f := range res.Failures {
			p.Fprintf(out, "  - %s\n", f)
		}
	}
	return runErr
}

func printReport(p *message.Printer, out io.Writer, results []runResult) {
	p.Fprintf(out, "%-36s %20s %7s %5s %4s %4s %3s %6s %10s\n",
		"RUN", "SEED", "CREDITS", "GPA", "CET4", "CET6", "SCI", "OFFERS", "MONEY")

	var graduated int
	var gpaSum float64
	for _, r := range results {
		s := r.Summary
		if s.Graduated {
			graduated++
		}
		gpaSum += s.GPA
		p.Fprintf(out, "%-36s %20d %7d %5.2f %4s %4s %3d %6d %10d\n",
			r.ID, r.Seed, s.Credits, s.GPA, certScore(s.CET4), certScore(s.CET6),
			s.Milestones.SCI, s.Milestones.Offers, s.Money)
	}
	p.Fprintf(out, "runs: %d  graduated: %d  mean gpa: %.2f\n",
		len(results), graduated, gpaSum/float64(max(1, len(results))))
}

func certScore(c *sim.Cert) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprint(c.Score)
}
