package views

import (
	"errors"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/parsa000721/records/export"
	"github.com/parsa000721/records/models"
	templates "github.com/parsa000721/records/templates/html"
)

// ErrNothingToExport is returned by Export for an empty collection
var ErrNothingToExport = errors.New("no case records to export")

// ListTitle is the heading of the list page
const ListTitle = "सभी प्रकरण"

// TableHeaders are the column headings of the list table
var TableHeaders = []string{
	"प्रकरण संख्या",
	"प्रकरण स्थिति",
	"दर्ज दिनांक",
	"धारा",
	"घटना स्थल",
	"परिवादी का नाम व पता",
	"अनुसंधान अधिकारी",
	"कार्यवाही",
}

// Row is one summary line of the list
type Row struct {
	ID            string
	CaseNumber    string
	Status        models.CaseStatus
	BadgeClass    string
	FilingDate    string
	Section       string
	IncidentPlace string
	Complainant   string
	Officer       string
	EditURL       string
	DeleteURL     string
}

// ListView renders a snapshot of the collection
type ListView struct {
	records []models.CaseRecord
}

// NewListView returns a view over records
func NewListView(records []models.CaseRecord) *ListView {
	return &ListView{records: records}
}

// Rows returns the summary rows in collection order
func (l *ListView) Rows() []Row {
	rows := make([]Row, 0, len(l.records))
	for _, r := range l.records {
		rows = append(rows, Row{
			ID:            r.ID,
			CaseNumber:    r.CaseNumber,
			Status:        r.CaseStatus,
			BadgeClass:    BadgeClass(r.CaseStatus),
			FilingDate:    FormatDate(r.FilingDate),
			Section:       r.Section,
			IncidentPlace: r.IncidentPlace,
			Complainant:   r.ComplainantNameAddress,
			Officer:       r.InvestigatingOfficer,
			EditURL:       CaseURL(r.ID) + "/edit",
			DeleteURL:     CaseURL(r.ID) + "/delete",
		})
	}
	return rows
}

// ExportEnabled is false when there is nothing to export
func (l *ListView) ExportEnabled() bool { return len(l.records) > 0 }

// Export writes the workbook of every record to w
func (l *ListView) Export(w io.Writer) error {
	if !l.ExportEnabled() {
		return ErrNothingToExport
	}
	return export.WriteWorkbook(w, l.records)
}

// Render writes the list page
func (l *ListView) Render(w io.Writer) error {
	page := templates.ListPage{
		Title:         ListTitle,
		Headers:       TableHeaders,
		ExportEnabled: l.ExportEnabled(),
		ExportURL:     "/cases/export",
		NewURL:        "/cases/new",
	}
	for _, r := range l.Rows() {
		page.Rows = append(page.Rows, templates.ListRow{
			CaseNumber:    r.CaseNumber,
			Status:        string(r.Status),
			BadgeClass:    r.BadgeClass,
			FilingDate:    r.FilingDate,
			Section:       r.Section,
			IncidentPlace: r.IncidentPlace,
			Complainant:   r.Complainant,
			Officer:       r.Officer,
			EditURL:       r.EditURL,
			DeleteURL:     r.DeleteURL,
		})
	}
	return templates.RenderList(w, page)
}

// BadgeClass returns the css class of the status badge
func BadgeClass(s models.CaseStatus) string {
	switch s {
	case models.StatusPending:
		return "badge-pending"
	case models.StatusClosed:
		return "badge-closed"
	case models.StatusUnderInvestigation:
		return "badge-investigation"
	}
	return "badge-unknown"
}

// FormatDate turns an ISO date (YYYY-MM-DD) into d/m/yyyy. Other values are
// returned unchanged.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return strconv.Itoa(t.Day()) + "/" + strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Year())
}

// CaseURL returns the path of the record with the given id
func CaseURL(id string) string {
	return "/cases/" + url.PathEscape(id)
}
