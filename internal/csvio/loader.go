package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// Catalog defaults for empty numeric cells.
const (
	DefaultCredits    = 2
	DefaultDifficulty = 3
	DefaultExamLoad   = 2
)

// LoadCoursesFile reads and parses given csv file for course data.
func LoadCoursesFile(path string, delim rune) ([]*model.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	courses, err := LoadCourses(f, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return courses, nil
}

// LoadCourses parses catalog rows from r. Rows are returned in file order.
func LoadCourses(in io.Reader, delim rune) ([]*model.Course, error) {
	r := csv.NewReader(in)
	r.Comma = delim
	r.TrimLeadingSpace = true

	rows := []*model.CourseCSV{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("parse courses: %w", err)
	}

	courses := make([]*model.Course, 0, len(rows))
	for i, row := range rows {
		c, err := convertCourse(row)
		if err != nil {
			// +2 for the header and one-based lines
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func convertCourse(row *model.CourseCSV) (*model.Course, error) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return nil, fmt.Errorf("missing course name")
	}
	credits, err := intOr(row.CreditsSTR, DefaultCredits)
	if err != nil {
		return nil, fmt.Errorf("%s credits: %w", name, err)
	}
	difficulty, err := intOr(row.DifficultySTR, DefaultDifficulty)
	if err != nil {
		return nil, fmt.Errorf("%s difficulty: %w", name, err)
	}
	examLoad, err := intOr(row.ExamLoadSTR, DefaultExamLoad)
	if err != nil {
		return nil, fmt.Errorf("%s exam load: %w", name, err)
	}
	term, err := intOr(row.SuggestedTermSTR, 1)
	if err != nil {
		return nil, fmt.Errorf("%s suggested term: %w", name, err)
	}
	required, err := boolOr(row.RequiredSTR)
	if err != nil {
		return nil, fmt.Errorf("%s required: %w", name, err)
	}
	locked, err := boolOr(row.LockedSTR)
	if err != nil {
		return nil, fmt.Errorf("%s locked: %w", name, err)
	}
	slots, err := model.ParseTimeSlots(row.SlotsSTR)
	if err != nil {
		return nil, fmt.Errorf("%s slots: %w", name, err)
	}

	return &model.Course{
		ID:            model.MakeCourseID(name),
		Name:          name,
		Credits:       credits,
		Difficulty:    difficulty,
		ExamLoad:      examLoad,
		Required:      required,
		Locked:        locked,
		Area:          strings.TrimSpace(row.Area),
		SuggestedTerm: term,
		Slots:         slots,
	}, nil
}

func intOr(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func boolOr(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
