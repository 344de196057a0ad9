package sim

import (
	"fmt"

	"github.com/rhyrak/campus-sim/internal/study"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// Action is one of the things a player can spend a weekly action on.
type Action string

const (
	ActStudy      Action = "study"
	ActResearch   Action = "research"
	ActWork       Action = "work"
	ActParty      Action = "party"
	ActRest       Action = "rest"
	ActAskParents Action = "ask_parents"
)

var Actions = []Action{ActStudy, ActResearch, ActWork, ActParty, ActRest, ActAskParents}

const (
	sciBase        = 0.005
	sciPerPower    = 0.015
	sciPerLuck     = 0.006
	sciPerSocial   = 0.0003
	sciPerResearch = 0.002
	sciMaxChance   = 0.08
	firstAuthor    = 0.25
	secondAuthor   = 0.7
)

// Allowed reports whether the action may be taken right now.
func (e *Engine) Allowed(a Action) error {
	s := e.State
	switch {
	case e.Done():
		return ErrFinished
	case s.Pending != nil:
		return ErrEventPending
	case s.ActionsLeft <= 0:
		return ErrNoActions
	case s.Money <= 0 && a != ActWork && a != ActAskParents:
		return ErrBroke
	case a == ActAskParents && s.ParentsAskedMonth == e.absMonth():
		return ErrAlreadyAsked
	case a == ActStudy && len(s.Courses) == 0:
		return ErrNoCourses
	}
	return nil
}

// Do spends one weekly action.
func (e *Engine) Do(a Action) error {
	if err := e.Allowed(a); err != nil {
		return fmt.Errorf("%s: %w", a, err)
	}
	switch a {
	case ActStudy:
		e.study()
	case ActResearch:
		e.research()
	case ActWork:
		e.ApplyEffect(model.Effect{Energy: -15, Stress: 10, Mood: -1, Money: e.rules.WorkReward, Social: 1,
			Hidden: model.Hidden{CareerPower: 0.05}})
	case ActParty:
		e.ApplyEffect(model.Effect{Energy: -8, Stress: -2, Mood: 4, Money: -e.rules.PartyCost, Social: 5,
			Hidden: model.Hidden{CareerPower: 0.1}})
	case ActRest:
		e.ApplyEffect(model.Effect{Energy: 18, Stress: -12, Mood: 3})
	case ActAskParents:
		e.askParents()
	default:
		return fmt.Errorf("unknown action %q", a)
	}
	e.State.ActionsLeft--
	e.logger.Debug("action", "action", a, "week", e.State.Week,
		"energy", e.State.Energy, "stress", e.State.Stress, "money", e.State.Money)
	return nil
}

// study pushes the most urgent courses by one hit each.
func (e *Engine) study() {
	s := e.State
	e.refreshUnlock()
	targets := study.SelectTargets(s.Courses, e.scorer(s.Unlocked()), s.Unlocked(), e.rules.StudyTargets, e.thresholds)

	s.TermStudy++
	if e.rules.IsFinalsWeek(s.Week) {
		s.FinalsStudyWeeks = min(s.FinalsStudyWeeks+1, e.rules.MaxFinalsWeeks)
	}
	e.ApplyEffect(model.Effect{Energy: -12, Stress: 8, Mood: -3, Hidden: model.Hidden{AcademicPower: 0.1}})

	for _, c := range targets {
		s.StudyHits[c.ID]++
		e.logger.Debug("studied", "course", c.Name, "hits", s.StudyHits[c.ID], "preview", e.Preview(c))
	}
	e.refreshUnlock()
}

func (e *Engine) research() {
	s := e.State
	s.TermResearch++
	e.ApplyEffect(model.Effect{Energy: -14, Stress: 6, Mood: -2, Hidden: model.Hidden{AcademicPower: 0.08}})
	if s.Year < 2 {
		return
	}

	p := sciBase + s.Hidden.AcademicPower*sciPerPower + e.luck()*sciPerLuck +
		float64(s.Social)*sciPerSocial + float64(s.TermResearch)*sciPerResearch
	p = min(max(p, 0), sciMaxChance)
	if e.rng.Float64() >= p {
		return
	}

	s.Milestones.SCI++
	s.Flags[FlagGotSCI] = true
	roll := e.rng.Float64()
	author := 3
	switch {
	case roll < firstAuthor:
		author = 1
	case roll < secondAuthor:
		author = 2
	}
	e.logger.Info("paper accepted", "author", author, "year", s.Year)

	if author != 1 || s.Flags[FlagRecommendation] {
		return
	}
	if s.Unlocked() && len(s.Failed) == 0 && !s.Discipline {
		s.Flags[FlagRecommendation] = true
		e.logger.Info("earned graduate school recommendation")
	}
}

func (e *Engine) askParents() {
	s := e.State
	s.ParentsAskedMonth = e.absMonth()
	amount := e.rules.AskParents[s.Background]
	if amount <= 0 {
		e.ApplyEffect(model.Effect{Mood: -2, Social: -1, Note: "decided not to ask after all"})
		return
	}
	e.ApplyEffect(model.Effect{Money: amount, Mood: 1, Social: -1, Note: fmt.Sprintf("parents sent %d", amount)})
}
