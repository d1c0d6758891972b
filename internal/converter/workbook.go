package converter

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is a worksheet split into its header row and typed data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]Cell
}

// ReadSheet loads the named sheet, or the first sheet when name is empty.
func ReadSheet(f *excelize.File, name string) (*Sheet, error) {
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		name = sheets[0]
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows of sheet %q: %w", name, err)
	}

	sheet := &Sheet{Name: name}
	if len(rows) == 0 {
		return sheet, nil
	}
	sheet.Header = rows[0]

	for r, row := range rows[1:] {
		cells := make([]Cell, len(row))
		for c, raw := range row {
			if raw == "" {
				continue
			}
			// header is row 1 and excelize coordinates are 1-based
			ref, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(name, ref)
			if err != nil {
				return nil, fmt.Errorf("cell type of %s!%s: %w", name, ref, err)
			}
			cells[c] = cellFromRaw(typ, raw)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}
