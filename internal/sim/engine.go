package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rhyrak/campus-sim/internal/catalog"
	"github.com/rhyrak/campus-sim/internal/events"
	"github.com/rhyrak/campus-sim/internal/grading"
	"github.com/rhyrak/campus-sim/internal/random"
	"github.com/rhyrak/campus-sim/internal/scheduler"
	"github.com/rhyrak/campus-sim/internal/study"
	"github.com/rhyrak/campus-sim/pkg/model"
)

var (
	ErrNoActions    = errors.New("no actions left this week")
	ErrEventPending = errors.New("an event is waiting for a choice")
	ErrAlreadyAsked = errors.New("parents were already asked this month")
	ErrBroke        = errors.New("out of money: only work or asking parents is possible")
	ErrNoCourses    = errors.New("no courses enrolled this term")
	ErrNoEvent      = errors.New("no event is pending")
	ErrFinished     = errors.New("simulation is finished")
	ErrLocked       = errors.New("course is mandatory this term")
	ErrConflict     = errors.New("course conflicts with the timetable")
)

type Options struct {
	Track      model.Track
	Background model.Background
	Route      model.Route

	// Courses overrides the built-in catalog for the track.
	Courses []*model.Course
	// Events overrides the built-in event catalog.
	Events []*events.Event

	Rules      *Rules
	Scheduler  *scheduler.Configuration
	Thresholds *study.Thresholds
	Grader     grading.Grader

	Seed   int64
	Rand   random.Source
	Logger *slog.Logger

	// AutoEnroll enrolls every recommended course that fits the timetable.
	AutoEnroll bool
}

// Engine owns one simulation. It is not safe for concurrent use; run
// independent engines in parallel instead.
type Engine struct {
	State *State
	Plan  *model.CurriculumPlan

	rules      Rules
	thresholds study.Thresholds
	grader     grading.Grader
	selector   *events.Selector
	rng        random.Source
	logger     *slog.Logger
	autoEnroll bool
	started    bool
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.Track == "" {
		opts.Track = model.TrackArts
	}
	if opts.Background == "" {
		opts.Background = model.BackgroundOK
	}
	courses := opts.Courses
	if courses == nil {
		var err error
		if courses, err = catalog.Load(opts.Track); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}
	evs := opts.Events
	if evs == nil {
		evs = events.Default()
	}

	e := &Engine{
		rules:      DefaultRules(),
		thresholds: study.DefaultThresholds(),
		grader:     opts.Grader,
		selector:   events.NewSelector(evs),
		rng:        opts.Rand,
		logger:     opts.Logger,
		autoEnroll: opts.AutoEnroll,
	}
	if opts.Rules != nil {
		e.rules = *opts.Rules
	}
	if opts.Thresholds != nil {
		e.thresholds = *opts.Thresholds
	}
	if e.grader == nil {
		e.grader = grading.Standard{}
	}
	if e.rng == nil {
		e.rng = random.NewSeeded(opts.Seed)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	e.Plan = scheduler.GeneratePlan(opts.Track, courses, opts.Scheduler)
	if ok, report := scheduler.ValidatePlan(e.Plan); !ok {
		e.logger.Warn("curriculum plan has gaps", "track", opts.Track, "report", report)
	}
	e.State = newState(opts.Track, opts.Background, opts.Route, e.rules.ActionsPerWeek)
	return e, nil
}

func (e *Engine) Rules() Rules { return e.rules }

// Start plans the first term and enters week 1.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	e.logger.Info("simulation started",
		"track", e.State.Track, "background", e.State.Background, "route", e.State.Route)
	e.AutoPlanTerm()
	e.refreshUnlock()
	e.EnterWeek()
}

// Done reports whether the final term has been graded.
func (e *Engine) Done() bool {
	return e.State.Year > e.rules.Years
}

func (e *Engine) TermIndex() int {
	return e.rules.TermIndex(e.State.Year, e.State.Term)
}

func (e *Engine) absWeek() int {
	return events.AbsWeek(e.State.Year, e.State.Term, e.State.Week)
}

func (e *Engine) absMonth() int {
	return e.rules.AbsMonth(e.State.Year, e.State.Term, e.State.Week)
}

// Snapshot is the view of the state the event gates read.
func (e *Engine) Snapshot() events.Snapshot {
	s := e.State
	return events.Snapshot{
		Year:       s.Year,
		Term:       s.Term,
		Week:       s.Week,
		Background: s.Background,
		Track:      s.Track,
		Route:      s.Route,
		Social:     s.Social,
		Luck:       s.Hidden.Luck,
		Flags:      s.Flags,
	}
}

func (e *Engine) luck() float64 {
	return events.EffectiveLuck(e.State.Hidden.Luck, e.State.Social)
}

func (e *Engine) gradeInput(c *model.Course, hits int, unlocked bool) grading.Input {
	s := e.State
	return grading.Input{
		Course:              c,
		Hits:                hits,
		TotalStudy:          s.TermStudy,
		FinalsHits:          s.FinalsStudyWeeks,
		TermBonus:           s.TermGradeBonus,
		Energy:              s.Energy,
		Stress:              s.Stress,
		Discipline:          s.Discipline,
		UnresolvedConflicts: anyConflict(s.Courses),
		Unlocked:            unlocked,
	}
}

// scorer previews each course at its current number of study hits.
func (e *Engine) scorer(unlocked bool) study.Scorer {
	return study.ScorerFunc(func(c *model.Course) (float64, bool) {
		return e.grader.Preview(e.gradeInput(c, e.State.StudyHits[c.ID], unlocked)), true
	})
}

// Preview returns the stable predicted score of an enrolled course.
func (e *Engine) Preview(c *model.Course) float64 {
	s, _ := e.scorer(e.State.Unlocked()).Score(c)
	return s
}

func (e *Engine) refreshUnlock() {
	e.State.Flags[FlagUnlocked] = study.CheckUnlock(e.State.Courses, e.scorer(false))
}
