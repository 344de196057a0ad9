package csvio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// ExportPlan formats the plan into PlanCSVRow structs and
// writes it to the CSV file specified by the given path.
func ExportPlan(plan *model.CurriculumPlan, path string) error {
	rows := formatPlan(plan)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportPlanString formats the plan the same way ExportPlan does and
// returns the CSV text.
func ExportPlanString(plan *model.CurriculumPlan) (string, error) {
	rows := formatPlan(plan)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}
	return str, nil
}

// PrintPlan prints the plan grouped by term.
func PrintPlan(w io.Writer, plan *model.CurriculumPlan) {
	total := 0
	for _, term := range plan.Terms() {
		credits := plan.TermCredits(term)
		total += credits
		title := fmt.Sprintf("Term %d  %d/%d", term, credits, plan.TermTargets[term])
		fmt.Fprintf(w, "\n%s %s %s\n", strings.Repeat("-", (40-len(title))/2), title, strings.Repeat("-", (41-len(title))/2))
		for _, c := range plan.TermCourses(term) {
			mark := " "
			switch {
			case plan.IsLocked(term, c.ID):
				mark = "L"
			case c.Required:
				mark = "R"
			}
			fmt.Fprintf(w, "%s %-34s %2d  %s\n", mark, c.Name, c.Credits, model.JoinTimeSlots(c.Slots))
		}
	}
	fmt.Fprintf(w, "\nPlanned credits: %d (graduation %d)\n", total, plan.GraduationCredits)
}

func formatPlan(plan *model.CurriculumPlan) []*model.PlanCSVRow {
	var formatted []*model.PlanCSVRow
	for _, term := range plan.Terms() {
		for _, c := range plan.TermCourses(term) {
			formatted = append(formatted, &model.PlanCSVRow{
				Term:       term,
				CourseID:   string(c.ID),
				CourseName: c.Name,
				Credits:    c.Credits,
				Required:   c.Required,
				Locked:     plan.IsLocked(term, c.ID),
				Area:       c.Area,
				Slots:      model.JoinTimeSlots(c.Slots),
			})
		}
	}
	return formatted
}
