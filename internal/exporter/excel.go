package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"VelocityWatch/internal/model"
)

const sheetName = "Sheet1"

var headers = []string{"Date", "Close", "240d Growth", "480d Growth", "1200d Growth", "Velocity"}

// BuildWorkbook turns the velocity records into an xlsx workbook.
// Dates are written zone-naive (YYYY-MM-DD).
func BuildWorkbook(records []model.VelocityRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, rec := range records {
		row := i + 2
		values := []interface{}{
			rec.Date.Format("2006-01-02"),
			rec.Close,
			rec.Growth240,
			rec.Growth480,
			rec.Growth1200,
			rec.Velocity,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}
	return f, nil
}

// Write streams the workbook for the given records to w.
func Write(w io.Writer, records []model.VelocityRecord) error {
	f, err := BuildWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// ExportFile writes <Index>_Velocity.xlsx into dir and returns the path.
func ExportFile(dir, index string, records []model.VelocityRecord) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	name := strings.ReplaceAll(index, " ", "_") + "_Velocity.xlsx"
	path := filepath.Join(dir, name)

	f, err := BuildWorkbook(records)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
