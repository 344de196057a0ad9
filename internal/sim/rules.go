package sim

import "github.com/rhyrak/campus-sim/pkg/model"

// Span is an inclusive integer range.
type Span struct {
	Min, Max int
}

type Rules struct {
	Years          int
	TermsPerYear   int
	TermWeeks      int
	WeeksPerMonth  int
	ActionsPerWeek int
	FinalsFrom     int
	FinalsTo       int
	MaxFinalsWeeks int
	StudyTargets   int

	Allowance  map[model.Background]int
	AskParents map[model.Background]int
	DailyCost  map[model.Background]Span
	Dinner     map[model.Background]Span

	Essentials    Span
	PhoneTopUp    int
	ExamMaterials int

	WorkReward int
	PartyCost  int

	StressDrift       int
	FinalsStressDrift int
	HighStress        int
	MoodDrop          Span

	CETWeek       int
	CETPass       int
	ConflictGuard int
}

func DefaultRules() Rules {
	return Rules{
		Years:          4,
		TermsPerYear:   2,
		TermWeeks:      16,
		WeeksPerMonth:  4,
		ActionsPerWeek: 3,
		FinalsFrom:     14,
		FinalsTo:       16,
		MaxFinalsWeeks: 3,
		StudyTargets:   4,

		Allowance: map[model.Background]int{
			model.BackgroundPoor: 800,
			model.BackgroundOK:   1500,
			model.BackgroundMid:  3000,
			model.BackgroundRich: 8000,
		},
		AskParents: map[model.Background]int{
			model.BackgroundPoor: 0,
			model.BackgroundOK:   200,
			model.BackgroundMid:  1000,
			model.BackgroundRich: 10000,
		},
		DailyCost: map[model.Background]Span{
			model.BackgroundPoor: {10, 20},
			model.BackgroundOK:   {20, 49},
			model.BackgroundMid:  {50, 100},
			model.BackgroundRich: {50, 100},
		},
		Dinner: map[model.Background]Span{
			model.BackgroundPoor: {30, 80},
			model.BackgroundOK:   {80, 180},
			model.BackgroundMid:  {150, 400},
			model.BackgroundRich: {150, 400},
		},

		Essentials:    Span{200, 400},
		PhoneTopUp:    50,
		ExamMaterials: 50,

		WorkReward: 400,
		PartyCost:  60,

		StressDrift:       3,
		FinalsStressDrift: 8,
		HighStress:        70,
		MoodDrop:          Span{2, 5},

		CETWeek:       8,
		CETPass:       425,
		ConflictGuard: 50,
	}
}

// TermIndex numbers terms 1..Years*TermsPerYear across the whole degree.
func (r Rules) TermIndex(year, term int) int {
	return (year-1)*r.TermsPerYear + term
}

func (r Rules) IsFinalsWeek(week int) bool {
	return week >= r.FinalsFrom && week <= r.FinalsTo
}

func (r Rules) weekInMonth(week int) int {
	return (week-1)%r.WeeksPerMonth + 1
}

func (r Rules) monthInTerm(week int) int {
	return (week-1)/r.WeeksPerMonth + 1
}

func (r Rules) monthsPerTerm() int {
	return r.TermWeeks / r.WeeksPerMonth
}

// AbsMonth grows monotonically across the degree.
func (r Rules) AbsMonth(year, term, week int) int {
	return (r.TermIndex(year, term)-1)*r.monthsPerTerm() + r.monthInTerm(week)
}
