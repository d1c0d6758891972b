package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultSampleSize mirrors the length of the official exam.
const DefaultSampleSize = 80

// AnswerKind tags which variant an Answer holds.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerSingle
	AnswerMultiple
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerSingle:
		return "single"
	case AnswerMultiple:
		return "multiple"
	default:
		return "none"
	}
}

// Answer holds the correct option index or indices of a question.
// On the wire it is null, a bare integer, or an array of integers.
type Answer struct {
	Kind    AnswerKind
	Indices []int
}

// NoAnswer is used when no option could be identified as correct.
func NoAnswer() Answer {
	return Answer{Kind: AnswerNone}
}

func SingleAnswer(index int) Answer {
	return Answer{Kind: AnswerSingle, Indices: []int{index}}
}

func MultipleAnswer(indices ...int) Answer {
	return Answer{Kind: AnswerMultiple, Indices: append([]int(nil), indices...)}
}

// AnswerFromIndices picks the variant from the number of correct positions found.
func AnswerFromIndices(indices []int) Answer {
	switch len(indices) {
	case 0:
		return NoAnswer()
	case 1:
		return SingleAnswer(indices[0])
	default:
		return MultipleAnswer(indices...)
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerSingle:
		if len(a.Indices) != 1 {
			return nil, fmt.Errorf("single answer with %d indices", len(a.Indices))
		}
		return json.Marshal(a.Indices[0])
	case AnswerMultiple:
		return json.Marshal(a.Indices)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = NoAnswer()
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var indices []int
		if err := json.Unmarshal(data, &indices); err != nil {
			return fmt.Errorf("decode answer indices: %w", err)
		}
		if len(indices) == 0 {
			*a = NoAnswer()
			return nil
		}
		*a = MultipleAnswer(indices...)
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("decode answer index: %w", err)
	}
	*a = SingleAnswer(index)
	return nil
}

// ErrInvalidAnswerIndex is returned when an answer points outside the option list.
var ErrInvalidAnswerIndex = errors.New("answer index out of range")

// Question is one record of the question bank, as written by the converter
// and served by the API.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   Answer   `json:"answer"`
}

// Validate checks that every answer index addresses an existing option.
func (q Question) Validate() error {
	for _, idx := range q.Answer.Indices {
		if idx < 0 || idx >= len(q.Options) {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidAnswerIndex, idx, len(q.Options))
		}
	}
	return nil
}
