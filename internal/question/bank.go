package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrInsufficientQuestions means the bank cannot fill a draw without repeats.
	ErrInsufficientQuestions = errors.New("insufficient questions in bank")
	ErrInvalidSampleSize     = errors.New("sample size must be positive")
)

// Bank is the read-only question bank held for the lifetime of the process.
type Bank struct {
	questions []Question
}

// NewBank copies qs into a bank after validating each record.
func NewBank(qs []Question) (*Bank, error) {
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	return &Bank{questions: append([]Question(nil), qs...)}, nil
}

// LoadBank reads the JSON array produced by the converter.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("decode question bank %s: %w", path, err)
	}
	return NewBank(qs)
}

func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns a copy of the bank in source order.
func (b *Bank) All() []Question {
	return append([]Question(nil), b.questions...)
}

// Sample draws n distinct questions uniformly at random without replacement.
// intN must return a value in [0, n) like math/rand/v2.IntN.
func (b *Bank) Sample(n int, intN func(int) int) ([]Question, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, n)
	}
	total := len(b.questions)
	if n > total {
		return nil, fmt.Errorf("%w: need %d got %d", ErrInsufficientQuestions, n, total)
	}

	// partial Fisher-Yates over indices, the bank itself is never reordered
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	out := make([]Question, n)
	for i := 0; i < n; i++ {
		j := i + intN(total-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = b.questions[idx[i]]
	}
	return out, nil
}
