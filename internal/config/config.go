package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds the quiz server configuration.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"quiz-bank"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:5000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" envDefault:"20s"`

	Bank Bank
	CORS CORS
}

// Bank locates the question bank and sizes each draw.
type Bank struct {
	Path       string `env:"QUIZ_BANK_PATH" envDefault:"data/quiz.json"`
	SampleSize int    `env:"QUIZ_SAMPLE_SIZE" envDefault:"80"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,X-Request-ID"`
	ExposedHeaders []string `env:"CORS_EXPOSED_HEADERS" envSeparator:"," envDefault:"X-Request-ID"`
	MaxAge         int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Converter drives the one-shot spreadsheet conversion.
type Converter struct {
	Env                string `env:"APP_ENV" envDefault:"development"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	SourcePath         string `env:"CONVERTER_SOURCE_PATH" envDefault:"data/Quiz-Scrum-2000.xlsx"`
	OutputPath         string `env:"CONVERTER_OUTPUT_PATH" envDefault:"data/quiz.json"`
	Sheet              string `env:"CONVERTER_SHEET"`
	QuestionHeader     string `env:"CONVERTER_QUESTION_HEADER" envDefault:"Domande"`
	OptionsHeader      string `env:"CONVERTER_OPTIONS_HEADER" envDefault:"Risposte"`
	ExtraOptionColumns int    `env:"CONVERTER_EXTRA_OPTION_COLUMNS" envDefault:"4"`
	Marker             string `env:"CONVERTER_MARKER" envDefault:"*"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Bank.SampleSize <= 0 {
		return nil, fmt.Errorf("QUIZ_SAMPLE_SIZE must be positive, got %d", cfg.Bank.SampleSize)
	}
	return cfg, nil
}

// LoadConverter parses environment variables into Converter config.
func LoadConverter(ctx context.Context) (*Converter, error) {
	cfg := &Converter{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse converter config: %w", err)
	}
	if cfg.Marker == "" {
		return nil, fmt.Errorf("CONVERTER_MARKER must not be empty")
	}
	if cfg.ExtraOptionColumns < 0 {
		return nil, fmt.Errorf("CONVERTER_EXTRA_OPTION_COLUMNS must not be negative, got %d", cfg.ExtraOptionColumns)
	}
	return cfg, nil
}
