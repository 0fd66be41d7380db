package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/parsa000721/records/api"
	"github.com/parsa000721/records/config"
	"github.com/parsa000721/records/export"
	"github.com/parsa000721/records/records"
	"github.com/parsa000721/records/validation"
	"github.com/parsa000721/records/views"
)

// ErrCaseNotFound is reported when no record carries the requested id
var ErrCaseNotFound = errors.New("case record not found")

// CaseRecord exported for testing purposes
type CaseRecord struct {
	Store     *records.Store
	Validator *validation.Validator
}

// ListHandler shows every case record, most recent first
func (c CaseRecord) ListHandler(w http.ResponseWriter, r *http.Request) {
	list := views.NewListView(c.Store.List())
	writeHTML(w, http.StatusOK, list.Render)
}

// NewCaseHandler shows an empty create form
func (c CaseRecord) NewCaseHandler(w http.ResponseWriter, r *http.Request) {
	form := views.NewFormView(c.Validator, nil)
	writeHTML(w, http.StatusOK, form.Render)
}

// CreateCaseHandler validates a submitted create form and adds the record
func (c CaseRecord) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		config.ErrorStatus("failed to parse form", http.StatusBadRequest, w, err)
		return
	}

	form := views.NewFormView(c.Validator, nil)
	form.Bind(r.PostForm)
	intent, ok := form.Submit()
	if !ok {
		zap.S().Debugw("rejected case record", "errors", len(form.Errors()))
		writeHTML(w, http.StatusUnprocessableEntity, form.Render)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()

	rec := c.Store.Add(ctx, intent.Details)
	zap.S().Infow("case record created",
		"case_id", rec.ID,
		"status", rec.CaseStatus.EnglishName(),
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditCaseHandler shows the edit form of an existing record
func (c CaseRecord) EditCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	rec, ok := c.Store.Get(caseID)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	form := views.NewFormView(c.Validator, &rec)
	writeHTML(w, http.StatusOK, form.Render)
}

// UpdateCaseHandler validates a submitted edit form and replaces the record's details
func (c CaseRecord) UpdateCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	if err := r.ParseForm(); err != nil {
		config.ErrorStatus("failed to parse form", http.StatusBadRequest, w, err)
		return
	}

	rec, ok := c.Store.Get(caseID)
	if !ok {
		// removed while the form was open
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := views.NewFormView(c.Validator, &rec)
	form.Bind(r.PostForm)
	intent, ok := form.Submit()
	if !ok {
		writeHTML(w, http.StatusUnprocessableEntity, form.Render)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()

	if _, ok := c.Store.Update(ctx, intent.ID, intent.Details); ok {
		zap.S().Infow("case record updated", "case_id", intent.ID)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteCaseHandler asks for confirmation before a record is removed
func (c CaseRecord) DeleteCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	rec, ok := c.Store.Get(caseID)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return views.RenderDeleteConfirm(out, rec)
	})
}

// ConfirmDeleteHandler receives the answer to the delete prompt. Only
// confirm=yes removes the record.
func (c CaseRecord) ConfirmDeleteHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	if err := r.ParseForm(); err != nil {
		config.ErrorStatus("failed to parse form", http.StatusBadRequest, w, err)
		return
	}
	answer := r.PostForm.Get("confirm")

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()

	removed := c.Store.Remove(ctx, caseID, records.ConfirmFunc(func(context.Context, string) bool {
		return answer == "yes"
	}))
	if removed {
		zap.S().Infow("case record deleted", "case_id", caseID)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ExportHandler downloads every record as an xlsx workbook
func (c CaseRecord) ExportHandler(w http.ResponseWriter, r *http.Request) {
	list := views.NewListView(c.Store.List())
	if !list.ExportEnabled() {
		writeHTML(w, http.StatusConflict, func(out io.Writer) error {
			return views.RenderNotice(out, "कोई प्रकरण नहीं मिला", "निर्यात करने के लिए कोई प्रकरण उपलब्ध नहीं है।")
		})
		return
	}

	var buf bytes.Buffer
	if err := list.Export(&buf); err != nil {
		config.ErrorStatus("failed to export case records", http.StatusInternalServerError, w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="cases.xlsx"; filename*=UTF-8''`+url.PathEscape(export.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// CasesHandler returns every record as JSON, most recent first
func (c CaseRecord) CasesHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(c.Store.List())
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseByIDHandler returns a single record as JSON
func (c CaseRecord) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	rec, ok := c.Store.Get(caseID)
	if !ok {
		config.ErrorStatus("failed to get case record by ID", http.StatusNotFound, w, ErrCaseNotFound)
		return
	}

	b, err := json.Marshal(rec)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

