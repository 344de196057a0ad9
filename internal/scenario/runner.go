package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rhyrak/campus-sim/internal/catalog"
	"github.com/rhyrak/campus-sim/internal/sim"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// ErrAssertion wraps the failures collected by Run.
var ErrAssertion = errors.New("scenario assertions failed")

type Result struct {
	Name     string
	Failures []string
	Summary  *sim.Summary
}

// Run replays the steps against a fresh engine built from the last config
// step seen before the first action. Expectations are collected rather
// than stopping the run; any failure makes Run return ErrAssertion.
func Run(ctx context.Context, sc *Scenario, logger *slog.Logger) (*Result, error) {
	if sc == nil {
		return nil, fmt.Errorf("scenario is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &runner{logger: logger.With("scenario", sc.Name), opts: defaultOptions()}
	r.opts.Logger = r.logger

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.apply(step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Kind, err)
		}
	}

	res := &Result{Name: sc.Name, Failures: r.failures}
	if r.engine != nil {
		res.Summary = r.engine.Summary()
	}
	if len(r.failures) > 0 {
		return res, fmt.Errorf("%w: %s", ErrAssertion, strings.Join(r.failures, "; "))
	}
	r.logger.Info("scenario passed", "steps", len(sc.Steps))
	return res, nil
}

type runner struct {
	logger   *slog.Logger
	opts     sim.Options
	engine   *sim.Engine
	failures []string
}

func defaultOptions() sim.Options {
	return sim.Options{
		Track:      model.TrackScience,
		Background: model.BackgroundOK,
		AutoEnroll: true,
	}
}

func (r *runner) apply(step Step) error {
	switch step.Kind {
	case "config":
		return r.configure(step.Args)
	}

	e, err := r.ensureEngine()
	if err != nil {
		return err
	}
	switch step.Kind {
	case "study", "research", "work", "party", "rest":
		for range intArg(step.Args, "n", 1) {
			if err := r.act(sim.Action(step.Kind)); err != nil {
				return err
			}
		}
	case "weeks":
		for range intArg(step.Args, "n", 1) {
			if e.Done() {
				break
			}
			if err := e.PlayWeek(nil, nil); err != nil {
				return err
			}
			if err := e.EndWeek(); err != nil {
				return err
			}
		}
	case "choose":
		return e.Choose(intArg(step.Args, "option", 1) - 1)
	case "set":
		r.set(step.Args)
	case "expect_term":
		if got, want := e.TermIndex(), intArg(step.Args, "term", 0); got != want {
			r.fail("term is %d, want %d", got, want)
		}
	case "expect_min_credits":
		if got, want := e.State.CreditsEarned, intArg(step.Args, "credits", 0); got < want {
			r.fail("credits are %d, want at least %d", got, want)
		}
	case "expect_money_at_least":
		if got, want := e.State.Money, intArg(step.Args, "money", 0); got < want {
			r.fail("money is %d, want at least %d", got, want)
		}
	case "expect_flag":
		name, _ := step.Args["name"].(string)
		want, _ := step.Args["value"].(bool)
		if got := e.State.Flags[name]; got != want {
			r.fail("flag %s is %t, want %t", name, got, want)
		}
	case "expect_stat":
		name, _ := step.Args["name"].(string)
		got, ok := stat(e.State, name)
		if !ok {
			return fmt.Errorf("unknown stat %q", name)
		}
		lo, hi := intArg(step.Args, "min", 0), intArg(step.Args, "max", 0)
		if got < lo || got > hi {
			r.fail("%s is %d, want %d..%d", name, got, lo, hi)
		}
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
	return nil
}

func (r *runner) configure(args map[string]any) error {
	if r.engine != nil {
		return fmt.Errorf("config after the simulation started")
	}
	if v, ok := args["track"].(string); ok {
		r.opts.Track = catalog.NormalizeTrack(v)
	}
	if v, ok := args["background"].(string); ok {
		r.opts.Background = model.ParseBackground(v)
	}
	if v, ok := args["route"].(string); ok {
		r.opts.Route = model.ParseRoute(v)
	}
	if _, ok := args["seed"]; ok {
		r.opts.Seed = int64(intArg(args, "seed", 0))
	}
	if v, ok := args["auto_enroll"].(bool); ok {
		r.opts.AutoEnroll = v
	}
	return nil
}

func (r *runner) ensureEngine() (*sim.Engine, error) {
	if r.engine != nil {
		return r.engine, nil
	}
	e, err := sim.NewEngine(r.opts)
	if err != nil {
		return nil, err
	}
	e.Start()
	r.engine = e
	return e, nil
}

// act answers a pending event with its first option and ends the week
// when no actions are left.
func (r *runner) act(a sim.Action) error {
	e := r.engine
	if e.Done() {
		return sim.ErrFinished
	}
	if e.State.Pending != nil {
		if err := e.Choose(0); err != nil {
			return err
		}
	}
	if e.State.ActionsLeft == 0 {
		if err := e.EndWeek(); err != nil {
			return err
		}
		if e.State.Pending != nil {
			if err := e.Choose(0); err != nil {
				return err
			}
		}
	}
	return e.Do(a)
}

func (r *runner) set(args map[string]any) {
	s := r.engine.State
	for key, ptr := range statFields(s) {
		if _, ok := args[key]; ok {
			*ptr = intArg(args, key, *ptr)
		}
	}
	switch v := args["luck"].(type) {
	case int:
		s.Hidden.Luck = float64(v)
	case float64:
		s.Hidden.Luck = v
	}
	if flags, ok := args["flags"].(map[string]any); ok {
		for name, v := range flags {
			b, _ := v.(bool)
			s.Flags[name] = b
		}
	}
}

func (r *runner) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.failures = append(r.failures, msg)
	r.logger.Warn("expectation failed", "detail", msg)
}

func statFields(s *sim.State) map[string]*int {
	return map[string]*int{
		"energy": &s.Energy,
		"stress": &s.Stress,
		"mood":   &s.Mood,
		"money":  &s.Money,
		"social": &s.Social,
	}
}

func stat(s *sim.State, name string) (int, bool) {
	ptr, ok := statFields(s)[name]
	if !ok {
		return 0, false
	}
	return *ptr, true
}

func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}
