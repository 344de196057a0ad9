package model

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type CourseID string

// Course is a single catalog entry. Locked courses belong to the mandatory
// sequence and are always Required.
type Course struct {
	ID            CourseID   `json:"id" validate:"required"`
	Name          string     `json:"name" validate:"required"`
	Credits       int        `json:"credits" validate:"min=1,max=10"`
	Difficulty    int        `json:"difficulty" validate:"min=1,max=5"`
	ExamLoad      int        `json:"examLoad" validate:"min=0,max=5"`
	Required      bool       `json:"required"`
	Locked        bool       `json:"locked"`
	Area          string     `json:"area" validate:"required"`
	SuggestedTerm int        `json:"suggestedTerm" validate:"min=1,max=8"`
	Slots         []TimeSlot `json:"slots" validate:"dive,timeslot"`
}

// CourseCSV is the raw catalog row. Numeric columns may be left empty and
// fall back to catalog defaults.
type CourseCSV struct {
	Name             string `csv:"name"`
	CreditsSTR       string `csv:"credits"`
	DifficultySTR    string `csv:"difficulty"`
	ExamLoadSTR      string `csv:"exam_load"`
	RequiredSTR      string `csv:"required"`
	LockedSTR        string `csv:"locked"`
	Area             string `csv:"area"`
	SuggestedTermSTR string `csv:"suggested_term"`
	SlotsSTR         string `csv:"slots"`
}

// Clone returns a deep copy so per-term bookkeeping never touches the pool.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Slots = slices.Clone(c.Slots)
	return &cp
}

// ConflictsWith reports whether two courses share a time slot.
// Courses without slots never conflict.
func (c *Course) ConflictsWith(other *Course) bool {
	for _, s := range c.Slots {
		if slices.Contains(other.Slots, s) {
			return true
		}
	}
	return false
}

// ConflictsWithAny reports whether c shares a slot with any of the given courses.
func (c *Course) ConflictsWithAny(courses []*Course) bool {
	for _, o := range courses {
		if o.ID != c.ID && c.ConflictsWith(o) {
			return true
		}
	}
	return false
}

func SumCredits(courses []*Course) int {
	sum := 0
	for _, c := range courses {
		sum += c.Credits
	}
	return sum
}

// MakeCourseID derives a stable identifier from a display name:
// accents are folded, spaces become underscores and anything else that is
// not a letter, digit or underscore is dropped.
func MakeCourseID(name string) CourseID {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		folded = strings.TrimSpace(name)
	}
	var b strings.Builder
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune('_')
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return CourseID(b.String())
}
