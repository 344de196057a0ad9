package model

// Hidden holds the long-term attributes that never show on the stat bars.
type Hidden struct {
	AcademicPower float64 `json:"academicPower,omitempty"`
	CareerPower   float64 `json:"careerPower,omitempty"`
	Luck          float64 `json:"luck,omitempty"`
	Stability     float64 `json:"stability,omitempty"`
}

func (h Hidden) Add(d Hidden) Hidden {
	return Hidden{
		AcademicPower: h.AcademicPower + d.AcademicPower,
		CareerPower:   h.CareerPower + d.CareerPower,
		Luck:          h.Luck + d.Luck,
		Stability:     h.Stability + d.Stability,
	}
}

// Effect is a sparse set of deltas. A zero field leaves the stat unchanged.
type Effect struct {
	Energy         int             `json:"energy,omitempty"`
	Stress         int             `json:"stress,omitempty"`
	Mood           int             `json:"mood,omitempty"`
	Money          int             `json:"money,omitempty"`
	Social         int             `json:"social,omitempty"`
	TermGradeBonus int             `json:"termGradeBonus,omitempty"`
	Hidden         Hidden          `json:"hidden,omitempty"`
	Flags          map[string]bool `json:"flags,omitempty"`
	Note           string          `json:"note,omitempty"`
}
