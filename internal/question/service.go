package question

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-bank/internal/logging"
)

// Draw modes reported to the recorder.
const (
	ModeExam     = "exam"
	ModePractice = "practice"
)

// Outcomes reported to the recorder.
const (
	OutcomeOK           = "ok"
	OutcomeInsufficient = "insufficient"
	OutcomeError        = "error"
)

// DrawRecorder receives one observation per draw (implemented by metrics.Recorder).
type DrawRecorder interface {
	ObserveDraw(mode, outcome string)
}

type ServiceOptions struct {
	SampleSize int
	// IntN overrides the random source, mainly for tests. Must be safe for concurrent use.
	IntN     func(int) int
	Recorder DrawRecorder
}

// Service hands out random question sets from an immutable bank.
type Service struct {
	bank       *Bank
	sampleSize int
	intN       func(int) int
	recorder   DrawRecorder
}

func NewService(bank *Bank, opts ServiceOptions) *Service {
	if opts.SampleSize <= 0 {
		opts.SampleSize = DefaultSampleSize
	}
	if opts.IntN == nil {
		opts.IntN = rand.IntN
	}
	return &Service{
		bank:       bank,
		sampleSize: opts.SampleSize,
		intN:       opts.IntN,
		recorder:   opts.Recorder,
	}
}

func (s *Service) SampleSize() int {
	return s.sampleSize
}

func (s *Service) BankSize() int {
	return s.bank.Len()
}

// Draw returns an exam-style set: SampleSize distinct questions in random order.
func (s *Service) Draw(ctx context.Context) ([]Question, error) {
	qs, err := s.bank.Sample(s.sampleSize, s.intN)
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, ErrInsufficientQuestions) {
			outcome = OutcomeInsufficient
		}
		s.observe(ModeExam, outcome)
		logger := logging.FromContext(ctx)
		logger.Error().Err(err).
			Int("bank_size", s.bank.Len()).
			Int("sample_size", s.sampleSize).
			Msg("quiz draw failed")
		return nil, err
	}
	s.observe(ModeExam, OutcomeOK)
	logger := logging.FromContext(ctx)
	logger.Debug().Int("count", len(qs)).Msg("quiz drawn")
	return qs, nil
}

// Practice returns the whole bank shuffled.
func (s *Service) Practice(ctx context.Context) []Question {
	qs := s.bank.All()
	for i := len(qs) - 1; i > 0; i-- {
		j := s.intN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
	s.observe(ModePractice, OutcomeOK)
	logger := logging.FromContext(ctx)
	logger.Debug().Int("count", len(qs)).Msg("practice set shuffled")
	return qs
}

func (s *Service) observe(mode, outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveDraw(mode, outcome)
	}
}

// LogSummary writes a one-line description of the loaded bank.
func (s *Service) LogSummary(logger zerolog.Logger) {
	var single, multi, none int
	for _, q := range s.bank.questions {
		switch q.Answer.Kind {
		case AnswerSingle:
			single++
		case AnswerMultiple:
			multi++
		default:
			none++
		}
	}
	logger.Info().
		Int("questions", s.bank.Len()).
		Int("single_answer", single).
		Int("multi_answer", multi).
		Int("no_answer", none).
		Int("sample_size", s.sampleSize).
		Msg("question bank loaded")
	if s.bank.Len() < s.sampleSize {
		logger.Warn().Msg("bank smaller than sample size; /quiz will fail until the bank is regenerated")
	}
}
