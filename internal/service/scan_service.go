package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"iban-scanner/internal/iban"
	"iban-scanner/internal/metrics"
	"iban-scanner/internal/model"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
)

const (
	acceptedMessage = "Valid IBAN: "
	rejectedMessage = "Wrong IBAN"

	// ReasonValidator - кандидат отклонён внешним валидатором, а не правилами IBAN
	ReasonValidator iban.Rejection = "validator"
)

type ScanService struct {
	validator iban.ContentValidator
	metrics   *metrics.Metrics
	workers   int
	log       zerolog.Logger
}

func NewScanService(validator iban.ContentValidator, m *metrics.Metrics, workers int, log zerolog.Logger) *ScanService {
	if workers <= 0 {
		workers = 1
	}
	return &ScanService{
		validator: validator,
		metrics:   m,
		workers:   workers,
		log:       log,
	}
}

func (s *ScanService) Clean(principal model.Principal, raw string) (string, error) {
	if !principal.CanScan() {
		return "", ErrPermissionDenied
	}
	return s.validator.Clean(raw), nil
}

func (s *ScanService) Validate(ctx context.Context, principal model.Principal, text string) (*model.ValidationResult, error) {
	if !principal.CanScan() {
		return nil, ErrPermissionDenied
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := s.validate(text)
	return &result, nil
}

// ValidateBatch проверяет кандидатов параллельно, порядок результатов совпадает с входом
func (s *ScanService) ValidateBatch(ctx context.Context, principal model.Principal, candidates []string) ([]model.ValidationResult, error) {
	if !principal.CanScan() {
		return nil, ErrPermissionDenied
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInvalidInput)
	}

	results := make([]model.ValidationResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.validate(candidate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Scan повторяет цикл сканера: каждый кадр очищается и валидируется,
// первый принятый кадр завершает сканирование
func (s *ScanService) Scan(ctx context.Context, principal model.Principal, frames []string) (*model.ScanResult, error) {
	if !principal.CanScan() {
		return nil, ErrPermissionDenied
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrInvalidInput)
	}

	result := &model.ScanResult{
		ID:      uuid.New(),
		Message: rejectedMessage,
	}

	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cleaned := s.validator.Clean(frame)
		result.Text = cleaned
		result.FramesProcessed = i + 1

		if s.validator.Validate(cleaned) {
			result.ResultOk = true
			result.Reason = iban.RejectionNone
			result.Message = acceptedMessage + cleaned
			break
		}

		result.Reason = s.rejectionReason(cleaned)
		s.log.Debug().
			Str("scan_id", result.ID.String()).
			Int("frame", i).
			Str("reason", result.Reason.String()).
			Msg("frame rejected")
	}

	s.metrics.ObserveScan(result.ResultOk, result.FramesProcessed)
	s.log.Info().
		Str("scan_id", result.ID.String()).
		Bool("result_ok", result.ResultOk).
		Int("frames", result.FramesProcessed).
		Msg("scan finished")

	return result, nil
}

func (s *ScanService) validate(text string) model.ValidationResult {
	result := model.ValidationResult{
		Candidate: strings.TrimSpace(text),
		Valid:     s.validator.Validate(text),
		Reason:    iban.RejectionNone,
	}
	if !result.Valid {
		result.Reason = s.rejectionReason(text)
	}

	s.metrics.IncrementValidation(result.Valid, result.Reason.String())
	return result
}

func (s *ScanService) rejectionReason(text string) iban.Rejection {
	reason := iban.Check(strings.TrimSpace(text))
	if reason == iban.RejectionNone {
		return ReasonValidator
	}
	return reason
}
