package views

import (
	"io"

	"github.com/parsa000721/records/models"
	"github.com/parsa000721/records/records"
	templates "github.com/parsa000721/records/templates/html"
)

// RenderDeleteConfirm writes the yes/no page asked before rec is removed
func RenderDeleteConfirm(w io.Writer, rec models.CaseRecord) error {
	return templates.RenderConfirm(w, templates.ConfirmPage{
		Prompt:     records.DeletePrompt,
		CaseNumber: rec.CaseNumber,
		Action:     CaseURL(rec.ID) + "/delete",
		CancelURL:  "/",
	})
}

// RenderNotice writes a message page linking back to the list
func RenderNotice(w io.Writer, title, message string) error {
	return templates.RenderNotice(w, templates.NoticePage{Title: title, Message: message, BackURL: "/"})
}
