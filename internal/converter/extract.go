package converter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gokatarajesh/quiz-bank/internal/question"
)

var (
	// ErrMissingColumn means a required header was not found in the first row.
	ErrMissingColumn = errors.New("missing required column")
	ErrNoSheets      = errors.New("workbook has no sheets")
)

// booleanTokens answer true/false style rows that carry no marker.
var booleanTokens = map[string]bool{
	"true":  true,
	"false": true,
	"yes":   true,
	"no":    true,
}

// Layout describes where questions and options live in the sheet.
type Layout struct {
	QuestionHeader string
	OptionsHeader  string
	// ExtraOptionColumns is the number of unnamed columns after OptionsHeader that
	// also hold options.
	ExtraOptionColumns int
	Marker             string
}

// DefaultLayout matches the Quiz-Scrum spreadsheet.
func DefaultLayout() Layout {
	return Layout{
		QuestionHeader:     "Domande",
		OptionsHeader:      "Risposte",
		ExtraOptionColumns: 4,
		Marker:             "*",
	}
}

// columns holds resolved zero-based column positions.
type columns struct {
	question int
	options  []int
}

func (l Layout) resolve(header []string) (columns, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
				return i
			}
		}
		return -1
	}

	cols := columns{question: find(l.QuestionHeader)}
	if cols.question < 0 {
		return columns{}, fmt.Errorf("%w: %q", ErrMissingColumn, l.QuestionHeader)
	}
	first := find(l.OptionsHeader)
	if first < 0 {
		return columns{}, fmt.Errorf("%w: %q", ErrMissingColumn, l.OptionsHeader)
	}
	for i := 0; i <= l.ExtraOptionColumns; i++ {
		cols.options = append(cols.options, first+i)
	}
	return cols, nil
}

// ExtractRow turns one data row into a question record.
func (l Layout) ExtractRow(questionCell Cell, optionCells []Cell) question.Question {
	var raw []Cell
	for _, c := range optionCells {
		if strings.TrimSpace(c.String()) != "" {
			raw = append(raw, c)
		}
	}

	options := make([]string, 0, len(raw))
	var correct []int
	for i, c := range raw {
		text := c.String()
		options = append(options, strings.TrimSpace(strings.ReplaceAll(text, l.Marker, "")))
		if c.Kind == CellText && strings.HasPrefix(strings.TrimSpace(text), l.Marker) {
			correct = append(correct, i)
		}
	}

	if len(correct) == 0 {
		for i, c := range raw {
			if booleanTokens[strings.ToLower(strings.TrimSpace(c.String()))] {
				correct = []int{i}
				break
			}
		}
	}

	return question.Question{
		Question: questionCell.String(),
		Options:  options,
		Answer:   question.AnswerFromIndices(correct),
	}
}

func cellAt(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return Cell{Kind: CellEmpty}
	}
	return row[i]
}
