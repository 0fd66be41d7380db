package views_test

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsa000721/records/models"
	"github.com/parsa000721/records/validation"
	"github.com/parsa000721/records/views"
)

func validDetails() models.CaseDetails {
	d := models.NewCaseDetails()
	d.CaseNumber = "CR-1"
	d.FilingDate = "2024-01-15"
	d.Section = "420"
	return d
}

func TestNewFormViewCreateMode(t *testing.T) {
	f := views.NewFormView(validation.New(), nil)

	assert.Equal(t, views.ModeCreate, f.Mode())
	assert.Empty(t, f.ID())
	assert.Equal(t, models.NewCaseDetails(), f.Buffer())
	assert.Equal(t, "नया प्रकरण बनाएं", f.Title())
	assert.Equal(t, "सहेजें", f.SubmitLabel())
	assert.Equal(t, "/cases", f.Action())
}

func TestNewFormViewEditMode(t *testing.T) {
	rec := models.CaseRecord{ID: "abc", CaseDetails: validDetails()}
	f := views.NewFormView(validation.New(), &rec)

	assert.Equal(t, views.ModeEdit, f.Mode())
	assert.Equal(t, "abc", f.ID())
	assert.Equal(t, rec.CaseDetails, f.Buffer())
	assert.Equal(t, "प्रकरण संपादित करें", f.Title())
	assert.Equal(t, "अपडेट करें", f.SubmitLabel())
	assert.Equal(t, "/cases/abc", f.Action())
}

func TestSubmitInvalidKeepsModeAndReportsErrors(t *testing.T) {
	f := views.NewFormView(validation.New(), nil)

	intent, ok := f.Submit()

	assert.False(t, ok)
	assert.Equal(t, views.SaveIntent{}, intent)
	assert.Equal(t, views.ModeCreate, f.Mode())
	assert.Equal(t, "प्रकरण संख्या आवश्यक है।", f.Error(models.FieldCaseNumber))
	assert.Equal(t, "दर्ज दिनांक आवश्यक है।", f.Error(models.FieldFilingDate))
	assert.Equal(t, "धारा आवश्यक है।", f.Error(models.FieldSection))
	assert.Empty(t, f.Error(models.FieldCaseStatus))
	assert.Len(t, f.Errors(), 3)
}

func TestSetFieldClearsOnlyThatError(t *testing.T) {
	f := views.NewFormView(validation.New(), nil)
	f.Submit()

	f.SetField(models.FieldCaseNumber, "CR-7")

	assert.Empty(t, f.Error(models.FieldCaseNumber))
	assert.NotEmpty(t, f.Error(models.FieldSection))
	assert.Equal(t, "CR-7", f.Buffer().CaseNumber)
}

func TestSubmitCreateEmitsIntentWithoutID(t *testing.T) {
	f := views.NewFormView(validation.New(), nil)
	f.Bind(url.Values{
		"caseNumber": {"CR-1"},
		"filingDate": {"2024-01-15"},
		"section":    {"420"},
		"caseStatus": {"बंद"},
		"unknown":    {"ignored"},
	})

	intent, ok := f.Submit()

	require.True(t, ok)
	assert.Empty(t, intent.ID)
	assert.Equal(t, "CR-1", intent.Details.CaseNumber)
	assert.Equal(t, models.StatusClosed, intent.Details.CaseStatus)
	assert.Empty(t, f.Errors())
}

func TestSubmitEditEmitsIntentWithID(t *testing.T) {
	rec := models.CaseRecord{ID: "abc", CaseDetails: validDetails()}
	f := views.NewFormView(validation.New(), &rec)
	f.SetField(models.FieldSection, "379")

	intent, ok := f.Submit()

	require.True(t, ok)
	assert.Equal(t, "abc", intent.ID)
	assert.Equal(t, "379", intent.Details.Section)
}

func TestSubmitRejectsUnknownStatus(t *testing.T) {
	f := views.NewFormView(validation.New(), nil)
	f.Bind(url.Values{"caseNumber": {"1"}, "filingDate": {"2024-01-01"}, "section": {"1"}, "caseStatus": {"archived"}})

	_, ok := f.Submit()

	assert.False(t, ok)
	assert.Equal(t, "प्रकरण स्थिति अमान्य है।", f.Error(models.FieldCaseStatus))
}

func TestCancelDiscardsBuffer(t *testing.T) {
	rec := models.CaseRecord{ID: "abc", CaseDetails: validDetails()}
	f := views.NewFormView(validation.New(), &rec)
	f.SetField(models.FieldCaseNumber, "")

	assert.Equal(t, views.CancelIntent{}, f.Cancel())
	assert.Equal(t, views.ModeCreate, f.Mode())
	assert.Equal(t, models.NewCaseDetails(), f.Buffer())
	assert.Empty(t, f.Errors())
}

func TestFormRender(t *testing.T) {
	f := views.NewFormView(validation.New(), nil)
	f.Submit()

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))

	out := buf.String()
	for _, g := range models.FieldGroups() {
		assert.Contains(t, out, g.Title)
	}
	for _, d := range models.Fields {
		assert.Contains(t, out, `name="`+string(d.ID)+`"`)
	}
	assert.Contains(t, out, "धारा आवश्यक है।")
	assert.Contains(t, out, `<option value="लंबित" selected>`)
	assert.Contains(t, out, "रद्द करें")
}
