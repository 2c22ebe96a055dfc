package store

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/adeyemi-oso/doctriage/internal/pipeline"
)

// ExportXLSX returns an XLSX workbook (as bytes) with one row per document
// result. Fields are flattened to "key=value" pairs; absent values render
// as empty.
func ExportXLSX(batch pipeline.BatchResult) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet so the workbook opens on Documents
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"File Name",
		"Category",
		"Status",
		"Method",
		"Fields",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, doc := range batch.Documents {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, doc.FileName)
		write(2, string(doc.Category))
		write(3, string(doc.Status))
		write(4, doc.Method)
		write(5, flattenFields(doc))
		write(6, doc.Error)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func flattenFields(doc pipeline.DocumentResult) string {
	if doc.Fields == nil {
		return ""
	}
	var parts []string
	doc.Fields.Each(func(key string, value *string) {
		if value == nil {
			parts = append(parts, key+"=")
			return
		}
		parts = append(parts, key+"="+*value)
	})
	return strings.Join(parts, "; ")
}
