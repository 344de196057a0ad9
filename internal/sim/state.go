// Package sim runs the week by week career simulation: money, actions,
// weekly events, enrollment, term grading and certificates.
package sim

import (
	"github.com/rhyrak/campus-sim/internal/events"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// Flag names with meaning outside the event catalog.
const (
	FlagUnlocked       = "allRequiredReachedB"
	FlagGotOffer       = "gotOffer"
	FlagGotSCI         = "gotSCI"
	FlagRecommendation = "gotRecommendation"
)

const (
	statMin = 0
	statMax = 100
)

type Cert struct {
	Score int  `json:"score"`
	Pass  bool `json:"pass"`
	Year  int  `json:"year"`
	Term  int  `json:"term"`
}

type Milestones struct {
	SCI    int `json:"sci"`
	Offers int `json:"offers"`
}

type GradeRow struct {
	CourseID   model.CourseID `json:"courseId"`
	Name       string         `json:"name"`
	Credits    int            `json:"credits"`
	Score      float64        `json:"score"`
	Letter     string         `json:"letter"`
	GradePoint float64        `json:"gradePoint"`
	Passed     bool           `json:"passed"`
}

// TermReport is one transcript entry, written when a term is finalized.
type TermReport struct {
	Year    int        `json:"year"`
	Term    int        `json:"term"`
	GPA     float64    `json:"gpa"`
	Credits int        `json:"credits"`
	Rows    []GradeRow `json:"rows"`
}

// State is everything that changes while a simulation runs.
type State struct {
	Year int
	Term int
	Week int

	Background model.Background
	Track      model.Track
	Route      model.Route

	Energy int
	Stress int
	Mood   int
	Money  int
	Social int

	Hidden model.Hidden
	Flags  map[string]bool

	// Term counters, reset by FinalizeTerm.
	TermGradeBonus   int
	TermStudy        int
	TermResearch     int
	FinalsStudyWeeks int
	StudyHits        map[model.CourseID]int

	Discipline bool

	CET4       *Cert
	CET6       *Cert
	Milestones Milestones

	Courses       []*model.Course
	Recommended   []*model.Course
	Completed     map[model.CourseID]bool
	Failed        map[model.CourseID]bool
	CreditsEarned int
	Transcript    []TermReport

	DinnerWeek        int
	DinnerMonth       int
	ParentsAskedMonth int

	ActionsLeft int
	Pending     *events.Presentation
}

func newState(track model.Track, bg model.Background, route model.Route, actions int) *State {
	return &State{
		Year:        1,
		Term:        1,
		Week:        1,
		Background:  bg,
		Track:       track,
		Route:       route,
		Energy:      80,
		Stress:      20,
		Mood:        70,
		Money:       200,
		Social:      50,
		Flags:       make(map[string]bool),
		StudyHits:   make(map[model.CourseID]int),
		Completed:   make(map[model.CourseID]bool),
		Failed:      make(map[model.CourseID]bool),
		ActionsLeft: actions,
	}
}

func (s *State) Unlocked() bool {
	return s.Flags[FlagUnlocked]
}

func (s *State) enrolled(id model.CourseID) bool {
	for _, c := range s.Courses {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *State) resetTerm() {
	s.TermGradeBonus = 0
	s.TermStudy = 0
	s.TermResearch = 0
	s.FinalsStudyWeeks = 0
	s.StudyHits = make(map[model.CourseID]int)
	s.Discipline = false
}

func clampStat(v int) int {
	return min(max(v, statMin), statMax)
}
