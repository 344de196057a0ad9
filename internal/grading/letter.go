package grading

type band struct {
	min    float64
	letter string
	point  float64
}

var bands = []band{
	{95, "A+", 4.0},
	{90, "A", 4.0},
	{85, "A-", 3.7},
	{82, "B+", 3.3},
	{78, "B", 3.0},
	{75, "B-", 2.7},
	{72, "C+", 2.3},
	{68, "C", 2.0},
	{64, "C-", 1.5},
	{60, "D", 1.0},
}

// PassScore is the lowest passing percentage.
const PassScore = 60

const gradeB = 78

func lookup(score float64) (string, float64) {
	for _, b := range bands {
		if score >= b.min {
			return b.letter, b.point
		}
	}
	return "F", 0
}

func Letter(score float64) string {
	l, _ := lookup(score)
	return l
}

func GradePoint(score float64) float64 {
	_, p := lookup(score)
	return p
}

func IsGradeB(score float64) bool {
	return score >= gradeB
}

func Passed(score float64) bool {
	return score >= PassScore
}

// GPA is the credit weighted mean grade point. Zero credits give zero.
func GPA(scores []float64, credits []int) float64 {
	var sum float64
	var total int
	for i, s := range scores {
		if i >= len(credits) {
			break
		}
		sum += GradePoint(s) * float64(credits[i])
		total += credits[i]
	}
	if total == 0 {
		return 0
	}
	return sum / float64(total)
}
