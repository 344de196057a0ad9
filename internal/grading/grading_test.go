package grading

import (
	"testing"

	"github.com/rhyrak/campus-sim/internal/random"
	"github.com/rhyrak/campus-sim/pkg/model"
	"github.com/stretchr/testify/assert"
)

func course(required bool, difficulty int) *model.Course {
	return &model.Course{ID: "c", Name: "C", Credits: 3, Difficulty: difficulty, Required: required, SuggestedTerm: 1}
}

func TestLetterBands(t *testing.T) {
	tests := []struct {
		score  float64
		letter string
		point  float64
	}{
		{100, "A+", 4.0},
		{95, "A+", 4.0},
		{94.9, "A", 4.0},
		{85, "A-", 3.7},
		{82, "B+", 3.3},
		{78, "B", 3.0},
		{77, "B-", 2.7},
		{72, "C+", 2.3},
		{68, "C", 2.0},
		{64, "C-", 1.5},
		{60, "D", 1.0},
		{59, "F", 0},
		{0, "F", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.letter, Letter(tt.score), "score %v", tt.score)
		assert.Equal(t, tt.point, GradePoint(tt.score), "score %v", tt.score)
	}
	assert.True(t, IsGradeB(78))
	assert.False(t, IsGradeB(77.9))
}

func TestPreviewIsDeterministic(t *testing.T) {
	in := Input{Course: course(true, 3), Hits: 2, TotalStudy: 4, Energy: 60, Stress: 30}
	g := Standard{}
	first := g.Preview(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.Preview(in))
	}
}

func TestPreviewNoiseBounds(t *testing.T) {
	// difficulty 3, no study: raw score is exactly 70.
	s := Standard{}.Preview(Input{Course: course(true, 3), Energy: 80})
	assert.GreaterOrEqual(t, s, 68.0)
	assert.LessOrEqual(t, s, 72.0)
}

func TestCommitNoiseBounds(t *testing.T) {
	g := Standard{}
	rng := random.NewSeeded(42)
	for i := 0; i < 200; i++ {
		s := g.Commit(Input{Course: course(true, 3), Energy: 80}, rng)
		assert.GreaterOrEqual(t, s, 66.0)
		assert.LessOrEqual(t, s, 74.0)
	}
}

func TestStudyHelps(t *testing.T) {
	g := Standard{}
	lazy := Input{Course: course(true, 3), Energy: 80}
	busy := lazy
	busy.Hits, busy.TotalStudy = 8, 8
	// 22*(1-0.8^8) is about 18.3, well beyond the noise.
	assert.Greater(t, g.Preview(busy), g.Preview(lazy)+10)
}

func TestRequiredCapUntilUnlocked(t *testing.T) {
	g := Standard{}
	in := Input{Course: course(true, 1), Hits: 20, TotalStudy: 20, FinalsHits: 3, TermBonus: 10, Energy: 80}
	assert.Equal(t, 89.0, g.Preview(in))
	in.Unlocked = true
	assert.Greater(t, g.Preview(in), 89.0)
	assert.LessOrEqual(t, g.Preview(in), 100.0)
}

func TestElectiveFloor(t *testing.T) {
	g := Standard{}
	in := Input{Course: course(false, 5), Hits: 1, TotalStudy: 40, TermBonus: -30, Energy: 0, Stress: 100, Discipline: true}
	assert.Equal(t, 60.0, g.Preview(in))
	in.Hits = 0
	assert.Less(t, g.Preview(in), 60.0)
}

func TestPenalties(t *testing.T) {
	g := Standard{}
	base := Input{Course: course(true, 3), Energy: 80}
	fined := base
	fined.Discipline = true
	fined.UnresolvedConflicts = true
	// 15 points of penalties against 4 points of preview noise.
	assert.Less(t, g.Preview(fined), g.Preview(base)-10)
}

func TestClampedToPercent(t *testing.T) {
	g := Standard{}
	in := Input{Course: course(true, 5), TermBonus: -200, Discipline: true}
	assert.Equal(t, 0.0, g.Preview(in))
	assert.Equal(t, 0.0, g.Commit(in, nil))
}

func TestGPA(t *testing.T) {
	assert.InDelta(t, (4.0*3+2.0*1)/4, GPA([]float64{92, 68}, []int{3, 1}), 1e-9)
	assert.Zero(t, GPA(nil, nil))
}
