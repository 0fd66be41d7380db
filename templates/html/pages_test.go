package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, ListPage{Title: "सभी प्रकरण", NewURL: "/cases/new", ExportURL: "/cases/export"}))

	out := buf.String()
	assert.Contains(t, out, AppTitle)
	assert.Contains(t, out, "कोई प्रकरण नहीं मिला")
	assert.Contains(t, out, `<button class="btn btn-export" disabled>`)
	assert.NotContains(t, out, "<table>")
}

func TestRenderListRowsAreEscaped(t *testing.T) {
	var buf bytes.Buffer
	err := RenderList(&buf, ListPage{
		Headers:       []string{"प्रकरण संख्या"},
		ExportEnabled: true,
		ExportURL:     "/cases/export",
		Rows: []ListRow{{
			CaseNumber: "<script>alert(1)</script>",
			Status:     "बंद",
			BadgeClass: "badge-closed",
			EditURL:    "/cases/1/edit",
			DeleteURL:  "/cases/1/delete",
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, `href="/cases/export"`)
	assert.Contains(t, out, `class="badge badge-closed"`)
}

func TestRenderFormMarksErrorsAndSelection(t *testing.T) {
	var buf bytes.Buffer
	err := RenderForm(&buf, FormPage{
		Title:       "नया प्रकरण बनाएं",
		SubmitLabel: "सहेजें",
		CancelLabel: "रद्द करें",
		Action:      "/cases",
		CancelURL:   "/",
		Groups: []FormGroup{{
			Title: "मूलभूत जानकारी",
			Fields: []FormField{
				{ID: "caseNumber", Label: "प्रकरण संख्या", Kind: "text", Required: true, Error: "प्रकरण संख्या आवश्यक है।"},
				{ID: "caseStatus", Label: "प्रकरण स्थिति", Kind: "select", Value: "बंद", Options: []string{"लंबित", "बंद"}},
				{ID: "fslDetails", Label: "एफएसएल का विवरण", Kind: "textarea", Rows: 3, Wide: true, Value: "sent"},
			},
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `action="/cases"`)
	assert.Contains(t, out, "प्रकरण संख्या आवश्यक है।")
	assert.Contains(t, out, `<option value="बंद" selected>`)
	assert.Contains(t, out, `rows="3"`)
	assert.Contains(t, out, "सहेजें")
}

func TestRenderConfirm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderConfirm(&buf, ConfirmPage{Prompt: "हटाएं?", CaseNumber: "CR-1", Action: "/cases/1/delete", CancelURL: "/"}))

	out := buf.String()
	assert.Contains(t, out, "हटाएं?")
	assert.Contains(t, out, `name="confirm" value="yes"`)
	assert.Contains(t, out, `action="/cases/1/delete"`)
}

func TestRenderNotice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderNotice(&buf, NoticePage{Title: "t", Message: "m", BackURL: "/"}))
	assert.Contains(t, buf.String(), "<h3>t</h3>")
}
