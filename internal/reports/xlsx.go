package reports

import (
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSXSink collects query results into one workbook, a sheet per query.
type XLSXSink struct {
	mu     sync.Mutex
	f      *excelize.File
	header int
	sheets int
}

func NewXLSXSink() (*XLSXSink, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	return &XLSXSink{f: f, header: header}, nil
}

func (s *XLSXSink) Write(q Query, res *Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := q.Sheet
	if sheet == "" {
		sheet = fmt.Sprintf("Query %d", s.sheets+1)
	}

	if s.sheets == 0 {
		if err := s.f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	} else if _, err := s.f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	s.sheets++

	for col, name := range res.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := s.f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := s.f.SetCellStyle(sheet, cell, cell, s.header); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for rowIdx, row := range res.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := s.f.SetCellValue(sheet, cell, FormatValue(v)); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// Save writes the workbook to path and releases it.
func (s *XLSXSink) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.f.SaveAs(path); err != nil {
		s.f.Close()
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return s.f.Close()
}
