package converter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/gokatarajesh/quiz-bank/internal/question"
)

// Options configures a conversion run.
type Options struct {
	SourcePath string
	OutputPath string
	// Sheet defaults to the first sheet of the workbook.
	Sheet  string
	Layout Layout
}

// Report summarizes a finished run.
type Report struct {
	OutputPath  string
	Rows        int
	Skipped     int
	Unanswered  int
	MultiAnswer int
}

// Converter turns a question spreadsheet into the JSON question bank.
type Converter struct {
	opts   Options
	logger zerolog.Logger
}

func New(opts Options, logger zerolog.Logger) *Converter {
	if opts.Layout.Marker == "" {
		opts.Layout.Marker = DefaultLayout().Marker
	}
	return &Converter{
		opts:   opts,
		logger: logger.With().Str("component", "converter").Logger(),
	}
}

// Run reads the workbook, extracts one record per row and writes the bank.
// Row level anomalies are logged and never abort the run.
func (c *Converter) Run(ctx context.Context) (Report, error) {
	f, err := excelize.OpenFile(c.opts.SourcePath)
	if err != nil {
		return Report{}, fmt.Errorf("open workbook %s: %w", c.opts.SourcePath, err)
	}
	defer f.Close()

	sheet, err := ReadSheet(f, c.opts.Sheet)
	if err != nil {
		return Report{}, err
	}

	records, report, err := c.Convert(sheet)
	if err != nil {
		return Report{}, err
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	abs, err := filepath.Abs(c.opts.OutputPath)
	if err != nil {
		return Report{}, fmt.Errorf("resolve output path: %w", err)
	}
	if err := WriteJSON(abs, records); err != nil {
		return Report{}, err
	}
	report.OutputPath = abs

	c.logger.Info().
		Str("sheet", sheet.Name).
		Int("rows", report.Rows).
		Int("skipped", report.Skipped).
		Int("unanswered", report.Unanswered).
		Int("multi_answer", report.MultiAnswer).
		Str("output", abs).
		Msg("question bank written")
	return report, nil
}

// Convert extracts records from an already loaded sheet.
func (c *Converter) Convert(sheet *Sheet) ([]question.Question, Report, error) {
	cols, err := c.opts.Layout.resolve(sheet.Header)
	if err != nil {
		return nil, Report{}, fmt.Errorf("sheet %q: %w", sheet.Name, err)
	}

	type rowCells struct {
		question Cell
		options  []Cell
		blank    bool
	}
	rows := make([]rowCells, len(sheet.Rows))
	last := -1
	for i, row := range sheet.Rows {
		rc := rowCells{question: cellAt(row, cols.question), options: make([]Cell, len(cols.options))}
		rc.blank = rc.question.IsEmpty()
		for j, col := range cols.options {
			rc.options[j] = cellAt(row, col)
			if !rc.options[j].IsEmpty() {
				rc.blank = false
			}
		}
		if !rc.blank {
			last = i
		}
		rows[i] = rc
	}

	var report Report
	// blank rows after the last question are sheet padding, not records
	report.Skipped = len(rows) - (last + 1)
	records := make([]question.Question, 0, last+1)
	for i, rc := range rows[:last+1] {
		rowNum := i + 2

		rec := c.opts.Layout.ExtractRow(rc.question, rc.options)
		if rc.blank {
			c.logger.Warn().Int("row", rowNum).Msg("blank row kept as empty question")
		} else if rc.question.IsEmpty() {
			c.logger.Warn().Int("row", rowNum).Msg("empty question text")
		}
		switch rec.Answer.Kind {
		case question.AnswerNone:
			report.Unanswered++
			c.logger.Warn().Int("row", rowNum).Str("question", rec.Question).Msg("no correct option found")
		case question.AnswerMultiple:
			report.MultiAnswer++
		}
		records = append(records, rec)
	}
	report.Rows = len(records)
	return records, report, nil
}
