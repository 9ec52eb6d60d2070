package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hammamikhairi/cozinha/internal/domain"
)

// draftValidator wraps a validator instance with the enum rules registered.
type draftValidator struct {
	v *validator.Validate
}

func newDraftValidator() *draftValidator {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(domain.Category)
		return ok && c.Valid()
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(domain.Difficulty)
		return ok && d.Valid()
	})
	return &draftValidator{v: v}
}

// check returns nil or an error wrapping domain.ErrInvalidDraft that
// names every failing field.
func (dv *draftValidator) check(d domain.Draft) error {
	d.Title = strings.TrimSpace(d.Title)
	err := dv.v.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDraft, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidDraft, strings.Join(fields, ", "))
}
