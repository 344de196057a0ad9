// Package events holds the weekly event catalog, the gate predicates that
// decide which events are eligible and the weighted selector that draws one.
package events

import (
	"slices"

	"github.com/rhyrak/campus-sim/internal/random"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// TagBreakthrough marks opportunities that become likelier with high social.
const TagBreakthrough = "breakthrough"

type Event struct {
	ID            string
	Title         string
	Text          string
	Weight        float64
	Tags          []string
	Gates         []Gate
	Options       []Option
	CooldownWeeks int
}

func (e *Event) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// Choice is an option as shown to the player: fixed text and effect.
type Choice struct {
	Text   string       `json:"text"`
	Effect model.Effect `json:"effect"`
}

// Option is either static (Text and Effect) or deferred (Build), in which
// case the text and effect are rolled when the event is presented.
type Option struct {
	Text   string
	Effect model.Effect
	Build  func(rng random.Source) Choice
}

// Resolve evaluates the option once.
func (o Option) Resolve(rng random.Source) Choice {
	if o.Build != nil {
		return o.Build(random.Or(rng))
	}
	return Choice{Text: o.Text, Effect: o.Effect}
}

// Presentation is an event with all of its options resolved.
type Presentation struct {
	Event   *Event
	Choices []Choice
}

// Present resolves every option of the event exactly once.
func (e *Event) Present(rng random.Source) *Presentation {
	rng = random.Or(rng)
	p := &Presentation{Event: e, Choices: make([]Choice, 0, len(e.Options))}
	for _, o := range e.Options {
		p.Choices = append(p.Choices, o.Resolve(rng))
	}
	return p
}
