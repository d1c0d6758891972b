package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/quiz-bank/internal/question"
)

func textCells(values ...string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = TextCell(v)
	}
	return cells
}

func TestExtractRow(t *testing.T) {
	layout := DefaultLayout()

	cases := []struct {
		name        string
		options     []Cell
		wantOptions []string
		wantAnswer  question.Answer
	}{
		{
			name:        "multiple marked options",
			options:     textCells("*Paris", "*Lyon", "Berlin"),
			wantOptions: []string{"Paris", "Lyon", "Berlin"},
			wantAnswer:  question.MultipleAnswer(0, 1),
		},
		{
			name:        "single marked option stays a bare index",
			options:     textCells("Red", "*Blue", "Green"),
			wantOptions: []string{"Red", "Blue", "Green"},
			wantAnswer:  question.SingleAnswer(1),
		},
		{
			name:        "boolean fallback picks the first token",
			options:     textCells("True", "False"),
			wantOptions: []string{"True", "False"},
			wantAnswer:  question.SingleAnswer(0),
		},
		{
			name:        "boolean fallback is case insensitive",
			options:     textCells("maybe", "YES", "no"),
			wantOptions: []string{"maybe", "YES", "no"},
			wantAnswer:  question.SingleAnswer(1),
		},
		{
			name:        "no marker and no boolean token",
			options:     textCells("Cat", "Dog", "Bird"),
			wantOptions: []string{"Cat", "Dog", "Bird"},
			wantAnswer:  question.NoAnswer(),
		},
		{
			name:        "empty cells are skipped and indices follow kept options",
			options:     []Cell{TextCell("A"), {}, TextCell(" *B "), {}, TextCell("C")},
			wantOptions: []string{"A", "B", "C"},
			wantAnswer:  question.SingleAnswer(1),
		},
		{
			name:        "embedded marker is stripped but does not mark",
			options:     textCells("Sprint*", "*Increment"),
			wantOptions: []string{"Sprint", "Increment"},
			wantAnswer:  question.SingleAnswer(1),
		},
		{
			name:        "boolean cells use the fallback",
			options:     []Cell{BoolCell(true), BoolCell(false)},
			wantOptions: []string{"True", "False"},
			wantAnswer:  question.SingleAnswer(0),
		},
		{
			name:        "numeric options are rendered without a marker check",
			options:     []Cell{NumberCell(3), TextCell("*5"), NumberCell(7.5)},
			wantOptions: []string{"3", "5", "7.5"},
			wantAnswer:  question.SingleAnswer(1),
		},
		{
			name:        "whitespace only cells are not options",
			options:     textCells("  ", "*Yes"),
			wantOptions: []string{"Yes"},
			wantAnswer:  question.SingleAnswer(0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := layout.ExtractRow(TextCell("Question?"), tc.options)
			assert.Equal(t, "Question?", got.Question)
			assert.Equal(t, tc.wantOptions, got.Options)
			assert.Equal(t, tc.wantAnswer, got.Answer)
			require.NoError(t, got.Validate())
			for _, opt := range got.Options {
				assert.NotContains(t, opt, layout.Marker)
			}
		})
	}
}

func TestExtractRowCoercesQuestionText(t *testing.T) {
	layout := DefaultLayout()

	assert.Equal(t, "42", layout.ExtractRow(NumberCell(42), textCells("*a")).Question)
	assert.Equal(t, "", layout.ExtractRow(Cell{}, textCells("*a")).Question)
	assert.Equal(t, "True", layout.ExtractRow(BoolCell(true), textCells("*a")).Question)
}

func TestExtractRowNoOptions(t *testing.T) {
	got := DefaultLayout().ExtractRow(TextCell("Orphan"), nil)
	assert.Equal(t, []string{}, got.Options)
	assert.Equal(t, question.NoAnswer(), got.Answer)
}

func TestExtractRowCustomMarker(t *testing.T) {
	layout := DefaultLayout()
	layout.Marker = "#"

	got := layout.ExtractRow(TextCell("q"), textCells("*a", "#b"))
	assert.Equal(t, []string{"*a", "b"}, got.Options)
	assert.Equal(t, question.SingleAnswer(1), got.Answer)
}

func TestResolveColumns(t *testing.T) {
	cols, err := DefaultLayout().resolve([]string{"ID", " domande ", "RISPOSTE"})
	require.NoError(t, err)
	assert.Equal(t, 1, cols.question)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, cols.options)
}

func TestResolveColumnsMissing(t *testing.T) {
	_, err := DefaultLayout().resolve([]string{"Domande", "Answers"})
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Risposte")
}
