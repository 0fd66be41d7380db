package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/parsa000721/records/models"
)

// Validator checks case details against the rules in models.Fields
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the case record tags registered
func New() *Validator {
	v := validator.New()

	// notblank rejects empty and whitespace-only values
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation("casestatus", func(fl validator.FieldLevel) bool {
		return models.CaseStatus(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

// Validate returns one message per failing field. An empty map means valid.
func (v *Validator) Validate(details models.CaseDetails) map[models.FieldID]string {
	errs := make(map[models.FieldID]string)
	for _, f := range models.Fields {
		tags := rulesFor(f)
		if tags == "" {
			continue
		}
		err := v.v.Var(details.Value(f.ID), tags)
		if err == nil {
			continue
		}
		errs[f.ID] = message(f, err)
	}
	return errs
}

func rulesFor(f models.FieldDescriptor) string {
	var tags []string
	if f.Required {
		tags = append(tags, "notblank")
	}
	if f.ID == models.FieldCaseStatus {
		tags = append(tags, "casestatus")
	}
	return strings.Join(tags, ",")
}

func message(f models.FieldDescriptor, err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 && ve[0].Tag() == "casestatus" {
		return fmt.Sprintf("%s अमान्य है।", f.Label)
	}
	return fmt.Sprintf("%s आवश्यक है।", f.Label)
}
