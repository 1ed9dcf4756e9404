package service

import (
	"context"

	"github.com/Dan9191/loan-check/internal/integrations/cbr"
	"github.com/Dan9191/loan-check/internal/models"
	"github.com/Dan9191/loan-check/internal/scoring"
	"github.com/sirupsen/logrus"
)

// KeyRateSource provides the reference Central Bank key rate
type KeyRateSource interface {
	Get(ctx context.Context) (cbr.CachedKeyRate, error)
}

// Service handles business logic
type Service struct {
	evaluator *scoring.Evaluator
	keyRates  KeyRateSource
	log       *logrus.Logger
}

// NewService initializes a new service
func NewService(evaluator *scoring.Evaluator, keyRates KeyRateSource, log *logrus.Logger) *Service {
	return &Service{evaluator: evaluator, keyRates: keyRates, log: log}
}

// CheckApplication binds a submitted application and returns the credit
// decision. A rejection is a regular decision; the error is reserved for
// malformed applications and wraps models.ErrInvalidInput.
func (s *Service) CheckApplication(ctx context.Context, req models.ApplicationRequest) (models.Decision, error) {
	in, err := req.Bind()
	if err != nil {
		s.log.WithError(err).Warn("Invalid credit application")
		return models.Decision{}, err
	}

	report, err := s.evaluator.Assess(in)
	if err != nil {
		s.log.WithError(err).Warn("Credit application failed evaluation")
		return models.Decision{}, err
	}

	fields := logrus.Fields{
		"approved": report.Decision.Approved,
		"step":     report.Step,
		"score":    report.Score,
		"amount":   in.Amount,
		"term":     in.Term,
	}
	if report.Payment > 0 {
		fields["payment"] = report.Payment
		fields["rate"] = report.Rate
	}
	s.log.WithContext(ctx).WithFields(fields).Info("Credit application checked")

	return report.Decision, nil
}

// KeyRate returns the latest known Central Bank key rate
func (s *Service) KeyRate(ctx context.Context) (cbr.CachedKeyRate, error) {
	return s.keyRates.Get(ctx)
}
