package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gokatarajesh/quiz-bank/internal/question"
)

// WriteJSON overwrites path with records as an indented JSON array.
// Non-ASCII text is written as-is.
func WriteJSON(path string, records []question.Question) error {
	if records == nil {
		records = []question.Question{}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("encode question bank: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
