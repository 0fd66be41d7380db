// Package export flattens case records into the fixed 16 column spreadsheet layout.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/parsa000721/records/models"
)

const (
	// SheetName is the name of the only worksheet in the workbook
	SheetName = "प्रकरण"
	// FileName is the download name of the workbook
	FileName = "प्रकरण_सूची.xlsx"
	// ContentType is the media type of the workbook
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Header returns the localized column names in export order
func Header() []string {
	header := make([]string, 0, len(models.ExportColumns))
	for _, id := range models.ExportColumns {
		d, _ := models.Descriptor(id)
		header = append(header, d.Label)
	}
	return header
}

// Table returns the header row followed by one row per record, in collection order
func Table(records []models.CaseRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, Header())
	for _, r := range records {
		row := make([]string, 0, len(models.ExportColumns))
		for _, id := range models.ExportColumns {
			row = append(row, r.Value(id))
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteWorkbook writes an xlsx workbook holding Table(records) to w
func WriteWorkbook(w io.Writer, records []models.CaseRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, row := range Table(records) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
