package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"deedcheck/internal/domain"
	"deedcheck/internal/metrics"
	"deedcheck/internal/validator"
	"deedcheck/internal/validator/deed"
)

// PosthumousCheckInput holds the parameters for a posthumous signature check.
// A nil GracePeriodDays uses the configured default.
type PosthumousCheckInput struct {
	Signatory       string
	DeathDate       string
	DocumentDate    string
	GracePeriodDays *int
}

// RegistrationCheckInput holds the parameters for a Section 17 compliance check.
type RegistrationCheckInput struct {
	DocumentType       string
	PropertyValue      float64
	RegistrationNumber *string
	IsNotarized        bool
}

// RegistrationRules describes the fixed registration lookup tables.
type RegistrationRules struct {
	MandatoryTypes  []string `json:"mandatory_types"`
	ThresholdRupees float64  `json:"threshold_rupees"`
	Section         string   `json:"section"`
}

// CheckService runs fraud and compliance checks over deeds.
type CheckService interface {
	CheckPosthumous(ctx context.Context, input *PosthumousCheckInput) (*domain.PosthumousResult, error)
	CheckRegistration(ctx context.Context, input *RegistrationCheckInput) (*domain.RegistrationResult, error)
	ValidateDeed(ctx context.Context, rec *deed.Record) (*validator.Report, error)
	RegistrationRules() RegistrationRules
}

type checkService struct {
	engine             *validator.Engine
	defaultGracePeriod int
	metrics            *metrics.Metrics
	log                *zap.Logger
}

// NewCheckService creates a new CheckService implementation. A nil metrics
// disables instrumentation.
func NewCheckService(engine *validator.Engine, defaultGracePeriod int, m *metrics.Metrics, log *zap.Logger) CheckService {
	if log == nil {
		log = zap.NewNop()
	}
	return &checkService{
		engine:             engine,
		defaultGracePeriod: defaultGracePeriod,
		metrics:            m,
		log:                log.Named("check_service"),
	}
}

func (s *checkService) CheckPosthumous(_ context.Context, input *PosthumousCheckInput) (*domain.PosthumousResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveDuration(metrics.CheckPosthumous, time.Since(start)) }()

	grace := s.defaultGracePeriod
	if input.GracePeriodDays != nil {
		grace = *input.GracePeriodDays
	}

	result, err := deed.DetectPosthumousSignature(input.Signatory, input.DeathDate, input.DocumentDate, grace)
	if err != nil {
		s.metrics.IncrementError(metrics.CheckPosthumous)
		s.log.Info("posthumous check rejected", zap.String("signatory", input.Signatory), zap.Error(err))
		return nil, fmt.Errorf("checking posthumous signature: %w", err)
	}

	verdict := "clear"
	logFn := s.log.Info
	if result.IsFraudulent {
		verdict = "fraud"
		logFn = s.log.Warn
	}
	s.metrics.IncrementVerdict(metrics.CheckPosthumous, verdict)
	logFn("posthumous check evaluated",
		zap.String("signatory", result.Signatory),
		zap.Bool("is_fraudulent", result.IsFraudulent),
		zap.Int("days_after_death", result.DaysAfterDeath),
		zap.String("legal_risk", string(result.LegalRisk)),
		zap.Int("grace_period_days", grace),
	)
	return result, nil
}

func (s *checkService) CheckRegistration(_ context.Context, input *RegistrationCheckInput) (*domain.RegistrationResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveDuration(metrics.CheckRegistration, time.Since(start)) }()

	result, err := deed.ValidateSection17Compliance(input.DocumentType, input.PropertyValue, input.RegistrationNumber, input.IsNotarized)
	if err != nil {
		s.metrics.IncrementError(metrics.CheckRegistration)
		s.log.Info("registration check rejected", zap.String("document_type", input.DocumentType), zap.Error(err))
		return nil, fmt.Errorf("checking section 17 compliance: %w", err)
	}

	logFn := s.log.Info
	if !result.Compliant {
		logFn = s.log.Warn
	}
	s.metrics.IncrementVerdict(metrics.CheckRegistration, string(result.LegalStatus))
	logFn("registration check evaluated",
		zap.String("document_type", input.DocumentType),
		zap.Bool("compliant", result.Compliant),
		zap.String("legal_status", string(result.LegalStatus)),
		zap.Bool("is_notarized", input.IsNotarized),
	)
	return result, nil
}

func (s *checkService) ValidateDeed(ctx context.Context, rec *deed.Record) (*validator.Report, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveDuration(metrics.CheckDeed, time.Since(start)) }()

	if rec == nil {
		s.metrics.IncrementError(metrics.CheckDeed)
		return nil, domain.ErrInvalidRequest
	}
	if rec.GracePeriodDays != nil && *rec.GracePeriodDays < 0 {
		s.metrics.IncrementError(metrics.CheckDeed)
		return nil, fmt.Errorf("validating deed: %w", domain.ErrInvalidGracePeriod)
	}

	// Fill the default without mutating the caller's record.
	r := *rec
	if r.GracePeriodDays == nil {
		grace := s.defaultGracePeriod
		r.GracePeriodDays = &grace
	}

	report, err := s.engine.Evaluate(ctx, &r)
	if err != nil {
		s.metrics.IncrementError(metrics.CheckDeed)
		return nil, fmt.Errorf("validating deed: %w", err)
	}

	s.metrics.IncrementVerdict(metrics.CheckDeed, string(report.ValidationStatus))
	s.log.Info("deed validated",
		zap.String("report_id", report.ID.String()),
		zap.String("document_type", report.DocumentType),
		zap.String("status", string(report.ValidationStatus)),
		zap.Int("errors", report.Summary.Errors),
		zap.Int("warnings", report.Summary.Warnings),
	)
	return report, nil
}

func (s *checkService) RegistrationRules() RegistrationRules {
	return RegistrationRules{
		MandatoryTypes:  deed.MandatoryTypes(),
		ThresholdRupees: deed.RegistrationThresholdRupees,
		Section:         deed.RegistrationActSection17,
	}
}
