package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsa000721/records/models"
)

func validDetails() models.CaseDetails {
	d := models.NewCaseDetails()
	d.CaseNumber = "101/2023"
	d.FilingDate = "2023-01-05"
	d.Section = "302"
	return d
}

func TestValidate_Valid(t *testing.T) {
	errs := New().Validate(validDetails())
	assert.Empty(t, errs)
}

func TestValidate_OptionalFieldsMayBeBlank(t *testing.T) {
	d := validDetails()
	d.FslDetails = "   "
	d.IncidentPlace = ""
	assert.Empty(t, New().Validate(d))
}

func TestValidate_MandatoryFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CaseDetails)
		field   models.FieldID
		message string
	}{
		{"empty case number", func(d *models.CaseDetails) { d.CaseNumber = "" }, models.FieldCaseNumber, "प्रकरण संख्या आवश्यक है।"},
		{"whitespace filing date", func(d *models.CaseDetails) { d.FilingDate = " \t " }, models.FieldFilingDate, "दर्ज दिनांक आवश्यक है।"},
		{"blank section", func(d *models.CaseDetails) { d.Section = "\n" }, models.FieldSection, "धारा आवश्यक है।"},
		{"empty status", func(d *models.CaseDetails) { d.CaseStatus = "" }, models.FieldCaseStatus, "प्रकरण स्थिति आवश्यक है।"},
		{"unknown status", func(d *models.CaseDetails) { d.CaseStatus = "Open" }, models.FieldCaseStatus, "प्रकरण स्थिति अमान्य है।"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			errs := v.Validate(d)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidate_AllMandatoryMissing(t *testing.T) {
	errs := New().Validate(models.CaseDetails{})
	assert.Len(t, errs, 4)
	for _, id := range []models.FieldID{models.FieldCaseNumber, models.FieldFilingDate, models.FieldSection, models.FieldCaseStatus} {
		assert.Contains(t, errs, id)
	}
}

func TestValidate_IsPure(t *testing.T) {
	v := New()
	d := models.CaseDetails{}
	first := v.Validate(d)
	second := v.Validate(d)
	assert.Equal(t, first, second)
	assert.Equal(t, models.CaseDetails{}, d)
}
