package converter

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind is the shape of a spreadsheet cell after reading.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellBool
)

// Cell is a typed spreadsheet value.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

func TextCell(s string) Cell {
	if s == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: s}
}

func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

func BoolCell(b bool) Cell {
	return Cell{Kind: CellBool, Bool: b}
}

func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String renders every cell kind as display text.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		if c.Bool {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// cellFromRaw maps an excelize raw value and its declared type to a Cell.
func cellFromRaw(typ excelize.CellType, raw string) Cell {
	if raw == "" {
		return Cell{Kind: CellEmpty}
	}
	switch typ {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			return BoolCell(b)
		}
		return TextCell(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return NumberCell(n)
		}
		return TextCell(raw)
	default:
		// shared/inline strings, string formulas and error values
		return TextCell(raw)
	}
}
