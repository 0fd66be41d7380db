package export_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/parsa000721/records/export"
	"github.com/parsa000721/records/models"
)

var expectedHeader = []string{
	"प्रकरण संख्या",
	"प्रकरण स्थिति",
	"दर्ज दिनांक",
	"धारा",
	"घटना स्थल",
	"परिवादी का नाम व पता",
	"प्रकरण का संक्षिप्त विवरण",
	"अनुसंधान अधिकारी का नाम",
	"पुलिस नतिजा चालान/एफआर नम्बर व दिनांक",
	"अपराधी का नाम व पता",
	"जब्ती",
	"प्रकरण से संबंधित माल का विवरण",
	"मालमसरूखा",
	"माल व्याजाप्ता",
	"कोर्ट में चालान व एफआर पेश करने की दिनांक",
	"एफएसएल का विवरण",
}

func twoRecords() []models.CaseRecord {
	return []models.CaseRecord{
		{ID: "2", CaseDetails: models.CaseDetails{
			CaseNumber: "CR-2", CaseStatus: models.StatusClosed, FilingDate: "2024-03-02",
			Section: "302", InvestigatingOfficer: "SI Rao", FslDetails: "report received",
		}},
		{ID: "1", CaseDetails: models.CaseDetails{
			CaseNumber: "CR-1", CaseStatus: models.StatusPending, FilingDate: "2024-01-15",
			Section: "420", InvestigatingOfficer: "SI Sharma",
		}},
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, expectedHeader, export.Header())
}

func TestTable(t *testing.T) {
	table := export.Table(twoRecords())

	require.Len(t, table, 3)
	assert.Equal(t, expectedHeader, table[0])
	assert.Equal(t, "CR-2", table[1][0])
	assert.Equal(t, "बंद", table[1][1])
	assert.Equal(t, "report received", table[1][15])
	assert.Equal(t, "CR-1", table[2][0])
	assert.Equal(t, "SI Sharma", table[2][7])
	for _, row := range table {
		assert.Len(t, row, 16)
	}
}

func TestTableEmpty(t *testing.T) {
	assert.Equal(t, [][]string{expectedHeader}, export.Table(nil))
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteWorkbook(&buf, twoRecords()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, expectedHeader, rows[0])
	assert.Equal(t, "CR-2", rows[1][0])
	assert.Equal(t, "CR-1", rows[2][0])
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteWorkbookWriterFailure(t *testing.T) {
	err := export.WriteWorkbook(brokenWriter{}, twoRecords())
	assert.ErrorContains(t, err, "disk full")
}
