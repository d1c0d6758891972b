package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/quiz-bank/internal/config"
	"github.com/gokatarajesh/quiz-bank/internal/converter"
	"github.com/gokatarajesh/quiz-bank/internal/logging"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		// optional: defaults reproduce the fixed data/ paths
		_ = godotenv.Load("configs/.env")
	}

	ctx := context.Background()
	cfg, err := config.LoadConverter(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log.Logger = logging.NewWithWriter(os.Stderr, "quiz-converter", cfg.Env, cfg.LogLevel)

	conv := converter.New(converter.Options{
		SourcePath: cfg.SourcePath,
		OutputPath: cfg.OutputPath,
		Sheet:      cfg.Sheet,
		Layout: converter.Layout{
			QuestionHeader:     cfg.QuestionHeader,
			OptionsHeader:      cfg.OptionsHeader,
			ExtraOptionColumns: cfg.ExtraOptionColumns,
			Marker:             cfg.Marker,
		},
	}, log.Logger)

	report, err := conv.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.SourcePath).Msg("conversion failed")
	}

	fmt.Printf("Quiz saved to %s\n", report.OutputPath)
}
