package sim

import (
	"fmt"
	"math"

	"github.com/rhyrak/campus-sim/internal/events"
	"github.com/rhyrak/campus-sim/internal/grading"
	"github.com/rhyrak/campus-sim/internal/random"
	"github.com/rhyrak/campus-sim/pkg/model"
)

const (
	addDropWeek = 3
	daysPerWeek = 7

	dinnerEventID   = "MONTHLY_DINNER"
	treatLowFactor  = 1.2
	treatHighFactor = 1.8
)

// EnterWeek runs the start of the current week: monthly allowance and
// bills, weekly living costs, then either the monthly dinner or a random
// weekly event.
func (e *Engine) EnterWeek() {
	s := e.State
	if e.rules.weekInMonth(s.Week) == 1 {
		e.monthlyIncomeAndCosts()
	}
	e.weeklyLivingCost()

	if s.Week == addDropWeek && anyConflict(s.Courses) {
		e.ResolveConflicts()
	}

	if ev := e.dinner(); ev != nil {
		s.Pending = ev.Present(e.rng)
		return
	}
	if ev, ok := e.selector.Pick(e.Snapshot(), e.rng); ok {
		s.Pending = ev.Present(e.rng)
		e.logger.Debug("event", "id", ev.ID, "week", s.Week)
	}
}

func (e *Engine) monthlyIncomeAndCosts() {
	s := e.State
	income := e.rules.Allowance[s.Background]
	essentials := random.IntRange(e.rng, e.rules.Essentials.Min, e.rules.Essentials.Max)
	fixed := essentials + e.rules.PhoneTopUp
	if e.rules.monthInTerm(s.Week) == e.rules.monthsPerTerm() {
		fixed += e.rules.ExamMaterials
	}
	s.Money = max(0, s.Money+income-fixed)

	s.DinnerWeek = 1 + e.rng.Intn(e.rules.WeeksPerMonth)
	s.DinnerMonth = e.absMonth()
	e.logger.Debug("month start", "income", income, "fixed", fixed, "money", s.Money, "dinnerWeek", s.DinnerWeek)
}

func (e *Engine) weeklyLivingCost() {
	s := e.State
	span, ok := e.rules.DailyCost[s.Background]
	if !ok {
		span = e.rules.DailyCost[model.BackgroundOK]
	}
	sum := 0
	for range daysPerWeek {
		sum += random.IntRange(e.rng, span.Min, span.Max)
	}
	s.Money = max(0, s.Money-sum)
	e.logger.Debug("living costs", "spent", sum, "money", s.Money)
}

// dinner returns the guaranteed monthly dinner invitation when this is the
// drawn week of the month.
func (e *Engine) dinner() *events.Event {
	s := e.State
	if s.DinnerMonth != e.absMonth() {
		s.DinnerWeek = 1 + e.rng.Intn(e.rules.WeeksPerMonth)
		s.DinnerMonth = e.absMonth()
	}
	if e.rules.weekInMonth(s.Week) != s.DinnerWeek {
		return nil
	}

	span := e.rules.Dinner[s.Background]
	split := random.IntRange(e.rng, span.Min, span.Max)
	treat := random.IntRange(e.rng,
		int(math.Floor(float64(span.Max)*treatLowFactor)),
		int(math.Floor(float64(span.Max)*treatHighFactor)))

	return &events.Event{
		ID:    dinnerEventID,
		Title: "Dinner invitation",
		Text:  "Classmates want to eat out. Your wallet shrinks but your social battery charges.",
		Tags:  []string{"dinner"},
		Options: []events.Option{
			{Text: fmt.Sprintf("Go and split the bill (-%d)", split), Effect: model.Effect{
				Money: -split, Mood: 3, Stress: -3, Social: 3, Hidden: model.Hidden{Stability: 0.3}}},
			{Text: fmt.Sprintf("Treat everyone (-%d)", treat), Effect: model.Effect{
				Money: -treat, Mood: 4, Stress: -4, Social: 5, Hidden: model.Hidden{Luck: 0.5}}},
			{Text: "Stay in the dorm", Effect: model.Effect{
				Mood: -1, Energy: 8, Stress: -6, Social: -1, Hidden: model.Hidden{Stability: 0.2}}},
		},
	}
}

// Choose answers the pending event with the option at index i.
func (e *Engine) Choose(i int) error {
	s := e.State
	p := s.Pending
	if p == nil {
		return ErrNoEvent
	}
	if i < 0 || i >= len(p.Choices) {
		return fmt.Errorf("choose option %d of %d for %s", i, len(p.Choices), p.Event.ID)
	}
	choice := p.Choices[i]
	e.ApplyEffect(choice.Effect)
	e.selector.Record(p.Event, e.absWeek())
	s.Pending = nil
	e.logger.Debug("event resolved", "id", p.Event.ID, "choice", choice.Text)
	return nil
}

// EndWeek applies the weekend drift, runs the certificate exams, advances
// the calendar and finalizes the term at its end.
func (e *Engine) EndWeek() error {
	s := e.State
	if e.Done() {
		return ErrFinished
	}
	if s.Pending != nil {
		return ErrEventPending
	}

	e.drift()
	e.runCET()

	s.Week++
	s.ActionsLeft = e.rules.ActionsPerWeek
	if s.Week > e.rules.TermWeeks {
		e.FinalizeTerm()
		s.Week = 1
		s.Term++
		if s.Term > e.rules.TermsPerYear {
			s.Term = 1
			s.Year++
		}
		s.Courses = nil
		s.Recommended = nil
		if e.Done() {
			e.logger.Info("simulation finished", "credits", s.CreditsEarned, "graduation", e.Plan.GraduationCredits)
			return nil
		}
		e.AutoPlanTerm()
		e.refreshUnlock()
	}
	e.EnterWeek()
	return nil
}

func (e *Engine) drift() {
	s := e.State
	d := e.rules.StressDrift
	if e.rules.IsFinalsWeek(s.Week) {
		d = e.rules.FinalsStressDrift
	}
	s.Stress = clampStat(s.Stress + d)
	if s.Stress > e.rules.HighStress {
		e.applyMood(-random.IntRange(e.rng, e.rules.MoodDrop.Min, e.rules.MoodDrop.Max))
	}
}

type cetParams struct {
	base, perPower, perLuck, perStudy, offset int
	noiseLo, noiseHi                          int
	capStudy, capScore                        int
}

var (
	cet4Params = cetParams{base: 400, perPower: 50, perLuck: 6, perStudy: 7, noiseLo: -40, noiseHi: 40, capStudy: 10, capScore: 590}
	cet6Params = cetParams{base: 380, perPower: 45, perLuck: 5, perStudy: 6, offset: -10, noiseLo: -45, noiseHi: 35, capStudy: 12, capScore: 585}
)

const (
	cetMaxScore      = 710
	cetHighScore     = 600
	cetUnlockedBoost = 1.05
	cetLockedPenalty = 0.95
)

// runCET sits CET4 in the second term and CET6 in the third, in the exam
// week, once each. CET6 needs a CET4 pass.
func (e *Engine) runCET() {
	s := e.State
	if s.Week != e.rules.CETWeek {
		return
	}
	switch term := e.TermIndex(); {
	case term == 2 && s.CET4 == nil:
		s.CET4 = e.sitCET(cet4Params)
		e.logger.Info("CET4 result", "score", s.CET4.Score, "pass", s.CET4.Pass)
	case term == 3 && s.CET4 != nil && s.CET4.Pass && s.CET6 == nil:
		s.CET6 = e.sitCET(cet6Params)
		e.logger.Info("CET6 result", "score", s.CET6.Score, "pass", s.CET6.Pass)
	}
}

func (e *Engine) sitCET(p cetParams) *Cert {
	s := e.State
	round := func(f float64) int { return int(math.Floor(f + 0.5)) }

	base := p.base + round(s.Hidden.AcademicPower*float64(p.perPower)) +
		round(e.luck()*float64(p.perLuck)) + s.TermStudy*p.perStudy + p.offset
	mult := cetLockedPenalty
	if s.Unlocked() {
		mult = cetUnlockedBoost
	}
	score := round(float64(base)*mult) + random.IntRange(e.rng, p.noiseLo, p.noiseHi)
	score = min(max(score, 0), cetMaxScore)
	if score >= cetHighScore && s.TermStudy < p.capStudy {
		score = min(score, p.capScore)
	}
	return &Cert{Score: score, Pass: score >= e.rules.CETPass, Year: s.Year, Term: s.Term}
}

// FinalizeTerm grades every enrolled course, books credits and failures,
// appends the term report and resets the term counters.
func (e *Engine) FinalizeTerm() {
	s := e.State
	defer s.resetTerm()
	if len(s.Courses) == 0 {
		e.logger.Warn("no courses this term, nothing to grade", "year", s.Year, "term", s.Term)
		return
	}
	e.refreshUnlock()

	report := TermReport{Year: s.Year, Term: s.Term}
	scores := make([]float64, 0, len(s.Courses))
	credits := make([]int, 0, len(s.Courses))
	for _, c := range s.Courses {
		score := e.grader.Commit(e.gradeInput(c, s.StudyHits[c.ID], s.Unlocked()), e.rng)
		passed := grading.Passed(score)
		if passed {
			s.Completed[c.ID] = true
			delete(s.Failed, c.ID)
			s.CreditsEarned += c.Credits
			report.Credits += c.Credits
		} else {
			s.Failed[c.ID] = true
		}
		scores = append(scores, score)
		credits = append(credits, c.Credits)
		report.Rows = append(report.Rows, GradeRow{
			CourseID:   c.ID,
			Name:       c.Name,
			Credits:    c.Credits,
			Score:      score,
			Letter:     grading.Letter(score),
			GradePoint: grading.GradePoint(score),
			Passed:     passed,
		})
	}
	report.GPA = grading.GPA(scores, credits)
	s.Transcript = append(s.Transcript, report)

	e.logger.Info("term graded",
		"year", s.Year,
		"term", s.Term,
		"gpa", fmt.Sprintf("%.2f", report.GPA),
		"credits", report.Credits,
		"total", s.CreditsEarned,
		"failed", len(s.Failed))
}
