package scheduler

import (
	"fmt"
	"slices"

	"github.com/rhyrak/campus-sim/pkg/model"
)

// ValidatePlan checks the plan for slot collisions, double assignments,
// misplaced locked courses, missing required courses and short terms.
// Returns false and a report for invalid plans.
func ValidatePlan(plan *model.CurriculumPlan) (bool, string) {
	var message string
	var valid bool = true
	var hasCollision, hasDuplicate, hasMisplacedLock, hasMissingRequired, hasShortTerm bool

	seenTerm := make(map[model.CourseID]int)
	targetSum := 0
	for _, term := range plan.Terms() {
		targetSum += plan.TermTargets[term]

		timetable := model.NewTimetable()
		for _, c := range plan.TermCourses(term) {
			timetable.Add(c)
			if prev, ok := seenTerm[c.ID]; ok {
				hasDuplicate = true
				message += fmt.Sprintf("- %s planned in term %d and term %d\n", c.ID, prev, term)
			}
			seenTerm[c.ID] = term
		}
		for slot, ids := range timetable.Collisions() {
			hasCollision = true
			message += fmt.Sprintf("- Term %d %s holds %v\n", term, slot, ids)
		}

		for _, id := range plan.LockedByTerm[term] {
			if !slices.Contains(plan.PlannedByTerm[term], id) {
				hasMisplacedLock = true
				message += fmt.Sprintf("- Locked %s missing from term %d\n", id, term)
			}
		}

		if credits := plan.TermCredits(term); credits < plan.TermTargets[term] {
			hasShortTerm = true
			message += fmt.Sprintf("- Term %d has %d of %d credits\n", term, credits, plan.TermTargets[term])
		}
	}

	for _, c := range plan.Pool {
		term, planned := seenTerm[c.ID]
		if c.Locked && planned && term != c.SuggestedTerm {
			hasMisplacedLock = true
			message += fmt.Sprintf("- Locked %s planned in term %d, expected %d\n", c.ID, term, c.SuggestedTerm)
		}
		if c.Required && !planned {
			hasMissingRequired = true
			message += fmt.Sprintf("- Required %s is never planned\n", c.ID)
		}
	}

	if targetSum != plan.GraduationCredits {
		valid = false
		message = fmt.Sprintf("[FAIL]: Term targets sum to %d, graduation needs %d.\n", targetSum, plan.GraduationCredits) + message
	} else {
		message = "[  OK]: Term targets match graduation credits.\n" + message
	}
	message = checkLine("Term credit check.", hasShortTerm, &valid) + message
	message = checkLine("Required coverage check.", hasMissingRequired, &valid) + message
	message = checkLine("Locked placement check.", hasMisplacedLock, &valid) + message
	message = checkLine("Double assignment check.", hasDuplicate, &valid) + message
	message = checkLine("Course collision check.", hasCollision, &valid) + message

	return valid, message
}

func checkLine(name string, failed bool, valid *bool) string {
	if failed {
		*valid = false
		return "[FAIL]: " + name + "\n"
	}
	return "[  OK]: " + name + "\n"
}
