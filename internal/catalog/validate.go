package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rhyrak/campus-sim/pkg/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return model.TimeSlot(fl.Field().String()).Valid()
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(model.Course)
		if c.Locked && !c.Required {
			sl.ReportError(c.Locked, "Locked", "Locked", "lockedrequired", "")
		}
	}, model.Course{})
	return v
}

// Validate checks every course against its field rules, that locked
// courses are required and that ids are unique.
func Validate(courses []*model.Course) error {
	var errs []error
	seen := make(map[model.CourseID]bool, len(courses))
	for _, c := range courses {
		if err := validate.Struct(c); err != nil {
			errs = append(errs, fmt.Errorf("%s: %s", c.Name, describe(err)))
		}
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate course id %q", c.Name, c.ID))
		}
		seen[c.ID] = true
	}
	return errors.Join(errs...)
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
