// Package export renders saved places as downloadable workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Saved Places"

var header = []interface{}{"Place", "Type", "Location", "Description", "Rating", "Saved At"}

// WriteSavedPlaces writes places as an xlsx workbook with one row per place
func WriteSavedPlaces(w io.Writer, places []models.SavedPlace) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", bold); err != nil {
		return err
	}

	for i, p := range places {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.PlaceName, string(p.PlaceType), p.Location, "", "", p.CreatedAt.UTC().Format("2006-01-02 15:04")}
		if p.Description != nil {
			row[3] = *p.Description
		}
		if p.Rating != nil {
			row[4] = *p.Rating
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 32)
	_ = f.SetColWidth(SheetName, "C", "C", 18)
	_ = f.SetColWidth(SheetName, "D", "D", 60)
	_ = f.SetColWidth(SheetName, "F", "F", 18)

	return f.Write(w)
}
