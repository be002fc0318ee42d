// Package export writes contacts to spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/jacksmith/contacts/internal/model"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds exported contacts.
const SheetName = "Contacts"

// Header is the first row of every export.
var Header = []string{"Name", "Phone", "Email"}

// WriteXLSX writes contacts as an Excel workbook with one header row and one
// row per contact, in the order given.
func WriteXLSX(w io.Writer, contacts []model.Contact) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, c := range contacts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{c.Name(), c.Phone(), c.Email()}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", c.Name(), err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "C", 28); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ReadXLSX reads back the rows of a workbook written by WriteXLSX,
// excluding the header row.
func ReadXLSX(r io.Reader) ([]model.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", SheetName)
	}

	var out []model.Record
	for _, row := range rows[1:] {
		for len(row) < len(Header) {
			row = append(row, "")
		}
		out = append(out, model.Record{Name: row[0], Phone: row[1], Email: row[2]})
	}
	return out, nil
}
