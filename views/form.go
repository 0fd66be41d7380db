// Package views holds the presentation state of the case pages.
package views

import (
	"io"
	"net/url"

	"github.com/parsa000721/records/models"
	templates "github.com/parsa000721/records/templates/html"
	"github.com/parsa000721/records/validation"
)

// Mode tells whether the form creates a new record or edits an existing one
type Mode int

const (
	// ModeCreate starts from the blank template
	ModeCreate Mode = iota
	// ModeEdit is bound to an existing record id
	ModeEdit
)

const cancelLabel = "रद्द करें"

// SaveIntent is emitted by a valid submission. ID is empty in create mode.
type SaveIntent struct {
	ID      string
	Details models.CaseDetails
}

// CancelIntent is emitted when the user abandons the form
type CancelIntent struct{}

// FormView is the create/edit form state: an edit buffer plus per-field errors
type FormView struct {
	validator *validation.Validator
	mode      Mode
	id        string
	buffer    models.CaseDetails
	errors    map[models.FieldID]string
}

// NewFormView returns a form in create mode when initial is nil, in edit mode otherwise
func NewFormView(v *validation.Validator, initial *models.CaseRecord) *FormView {
	f := &FormView{validator: v}
	f.Reset(initial)
	return f
}

// Reset discards the buffer and errors and rebinds the form to initial
func (f *FormView) Reset(initial *models.CaseRecord) {
	f.errors = map[models.FieldID]string{}
	if initial == nil {
		f.mode = ModeCreate
		f.id = ""
		f.buffer = models.NewCaseDetails()
		return
	}
	f.mode = ModeEdit
	f.id = initial.ID
	f.buffer = initial.CaseDetails
}

// Mode returns the current mode
func (f *FormView) Mode() Mode { return f.mode }

// ID returns the id of the record being edited, "" in create mode
func (f *FormView) ID() string { return f.id }

// Buffer returns the current edit buffer
func (f *FormView) Buffer() models.CaseDetails { return f.buffer }

// Errors returns a copy of the current field errors
func (f *FormView) Errors() map[models.FieldID]string {
	out := make(map[models.FieldID]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Error returns the message shown under field, if any
func (f *FormView) Error(field models.FieldID) string { return f.errors[field] }

// SetField edits one field of the buffer and clears that field's error only
func (f *FormView) SetField(field models.FieldID, value string) {
	if !f.buffer.Set(field, value) {
		return
	}
	delete(f.errors, field)
}

// Bind applies every known field present in values
func (f *FormView) Bind(values url.Values) {
	for _, d := range models.Fields {
		if vs, ok := values[string(d.ID)]; ok && len(vs) > 0 {
			f.SetField(d.ID, vs[0])
		}
	}
}

// Submit validates the buffer. On failure it keeps the errors and reports false.
func (f *FormView) Submit() (SaveIntent, bool) {
	errs := f.validator.Validate(f.buffer)
	if len(errs) > 0 {
		f.errors = errs
		return SaveIntent{}, false
	}
	f.errors = map[models.FieldID]string{}

	intent := SaveIntent{Details: f.buffer}
	if f.mode == ModeEdit {
		intent.ID = f.id
	}
	return intent, true
}

// Cancel abandons the buffer without validating it
func (f *FormView) Cancel() CancelIntent {
	f.Reset(nil)
	return CancelIntent{}
}

// Title returns the page heading for the current mode
func (f *FormView) Title() string {
	if f.mode == ModeEdit {
		return "प्रकरण संपादित करें"
	}
	return "नया प्रकरण बनाएं"
}

// SubmitLabel returns the submit button text for the current mode
func (f *FormView) SubmitLabel() string {
	if f.mode == ModeEdit {
		return "अपडेट करें"
	}
	return "सहेजें"
}

// Action returns the URL the form posts to
func (f *FormView) Action() string {
	if f.mode == ModeEdit {
		return CaseURL(f.id)
	}
	return "/cases"
}

// Render writes the form page
func (f *FormView) Render(w io.Writer) error {
	return templates.RenderForm(w, f.page())
}

func (f *FormView) page() templates.FormPage {
	statuses := models.CaseStatuses()
	options := make([]string, len(statuses))
	for i, s := range statuses {
		options[i] = string(s)
	}

	var groups []templates.FormGroup
	for _, g := range models.FieldGroups() {
		group := templates.FormGroup{Title: g.Title}
		for _, d := range g.Fields {
			field := templates.FormField{
				ID:       string(d.ID),
				Label:    d.Label,
				Kind:     string(d.Kind),
				Value:    f.buffer.Value(d.ID),
				Required: d.Required,
				Wide:     d.ColSpan > 1,
				Rows:     d.Rows,
				Error:    f.errors[d.ID],
			}
			if d.Kind == models.InputSelect {
				field.Options = options
			}
			group.Fields = append(group.Fields, field)
		}
		groups = append(groups, group)
	}

	return templates.FormPage{
		Title:       f.Title(),
		SubmitLabel: f.SubmitLabel(),
		CancelLabel: cancelLabel,
		Action:      f.Action(),
		CancelURL:   "/",
		Groups:      groups,
	}
}
