package exporter

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"VelocityWatch/internal/model"
)

func sampleRecords() []model.VelocityRecord {
	return []model.VelocityRecord{
		{
			AnnotatedRecord: model.AnnotatedRecord{
				PricePoint: model.PricePoint{
					Date:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
					Close: 18000.25,
				},
				Growth240:  12.5,
				Growth480:  30.1,
				Growth1200: 85.2,
			},
			Velocity: 42.6,
		},
		{
			AnnotatedRecord: model.AnnotatedRecord{
				PricePoint: model.PricePoint{
					Date:  time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
					Close: 18100.50,
				},
				Growth240:  13.0,
				Growth480:  30.5,
				Growth1200: 86.0,
			},
			Velocity: 43.17,
		},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleRecords()); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 data rows, got %d", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][5] != "Velocity" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "2024-03-15" {
		t.Errorf("dates must be written zone-naive, got %q", rows[1][0])
	}
}

func TestExportFile_Naming(t *testing.T) {
	dir := t.TempDir()
	path, err := ExportFile(dir, "Nasdaq 100", sampleRecords())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := "Nasdaq_100_Velocity.xlsx"; filepath.Base(path) != want {
		t.Errorf("expected file name %q, got %q", want, filepath.Base(path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen exported file: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Sheet1", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "18000.25" {
		t.Errorf("expected close 18000.25 in B2, got %q", got)
	}
}
