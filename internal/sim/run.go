package sim

import (
	"context"
	"errors"

	"github.com/rhyrak/campus-sim/internal/events"
	"github.com/rhyrak/campus-sim/internal/grading"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// Policy picks the next weekly action.
type Policy interface {
	Next(s *State) Action
}

type PolicyFunc func(s *State) Action

func (f PolicyFunc) Next(s *State) Action { return f(s) }

// Chooser answers a pending event with an option index.
type Chooser func(p *events.Presentation, s *State) int

const lowEnergy = 30

// DefaultPolicy studies twice and rests once a week. It works when broke
// and rests when exhausted.
var DefaultPolicy Policy = PolicyFunc(func(s *State) Action {
	switch {
	case s.Money <= 0:
		return ActWork
	case s.Energy < lowEnergy:
		return ActRest
	case s.ActionsLeft > 1:
		return ActStudy
	default:
		return ActRest
	}
})

// FirstChoice always takes the first option.
func FirstChoice(*events.Presentation, *State) int { return 0 }

type Summary struct {
	Track             model.Track      `json:"track"`
	Background        model.Background `json:"background"`
	Route             model.Route      `json:"route"`
	Credits           int              `json:"credits"`
	GraduationCredits int              `json:"graduationCredits"`
	Graduated         bool             `json:"graduated"`
	GPA               float64          `json:"gpa"`
	CET4              *Cert            `json:"cet4,omitempty"`
	CET6              *Cert            `json:"cet6,omitempty"`
	Milestones        Milestones       `json:"milestones"`
	Money             int              `json:"money"`
	Recommendation    bool             `json:"recommendation"`
	Terms             []TermReport     `json:"terms"`
}

// Summary reports the run so far.
func (e *Engine) Summary() *Summary {
	s := e.State
	var scores []float64
	var credits []int
	for _, t := range s.Transcript {
		for _, r := range t.Rows {
			scores = append(scores, r.Score)
			credits = append(credits, r.Credits)
		}
	}
	return &Summary{
		Track:             s.Track,
		Background:        s.Background,
		Route:             s.Route,
		Credits:           s.CreditsEarned,
		GraduationCredits: e.Plan.GraduationCredits,
		Graduated:         s.CreditsEarned >= e.Plan.GraduationCredits,
		GPA:               grading.GPA(scores, credits),
		CET4:              s.CET4,
		CET6:              s.CET6,
		Milestones:        s.Milestones,
		Money:             s.Money,
		Recommendation:    s.Flags[FlagRecommendation],
		Terms:             s.Transcript,
	}
}

// PlayWeek answers the pending event and spends the week's actions. It
// does not end the week.
func (e *Engine) PlayWeek(policy Policy, choose Chooser) error {
	if policy == nil {
		policy = DefaultPolicy
	}
	if choose == nil {
		choose = FirstChoice
	}
	if p := e.State.Pending; p != nil {
		if err := e.Choose(choose(p, e.State)); err != nil {
			return err
		}
	}
	for guard := 0; e.State.ActionsLeft > 0 && guard < 3*e.rules.ActionsPerWeek; guard++ {
		err := e.Do(policy.Next(e.State))
		if err == nil {
			continue
		}
		fallback, ok := fallbackAction(err)
		if !ok {
			return err
		}
		if err := e.Do(fallback); err != nil && !errors.Is(err, ErrBroke) {
			return err
		}
	}
	return nil
}

// fallbackAction replaces an action the rules refused.
func fallbackAction(err error) (Action, bool) {
	switch {
	case errors.Is(err, ErrBroke), errors.Is(err, ErrAlreadyAsked):
		return ActWork, true
	case errors.Is(err, ErrNoCourses):
		return ActRest, true
	}
	return "", false
}

// Run plays the whole degree, or until ctx is cancelled.
func (e *Engine) Run(ctx context.Context, policy Policy, choose Chooser) (*Summary, error) {
	e.Start()
	for !e.Done() {
		if err := ctx.Err(); err != nil {
			return e.Summary(), err
		}
		if err := e.PlayWeek(policy, choose); err != nil {
			return e.Summary(), err
		}
		if err := e.EndWeek(); err != nil {
			return e.Summary(), err
		}
	}
	return e.Summary(), nil
}
