package validator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"deedcheck/internal/domain"
	"deedcheck/internal/validator/deed"
)

// Engine runs every registered rule against a deed and aggregates the outcome.
type Engine struct {
	registry *Registry
	now      func() time.Time
}

// NewEngine creates a new validation engine.
func NewEngine(registry *Registry) *Engine {
	return &Engine{
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Report is the aggregated result of validating one deed.
type Report struct {
	ID               uuid.UUID               `json:"id"`
	DocumentType     string                  `json:"document_type"`
	ValidationStatus domain.ValidationStatus `json:"validation_status"`
	Summary          ValidationSummary       `json:"summary"`
	Results          []ValidationResultItem  `json:"results"`
	FieldStatuses    map[string]*FieldStatus `json:"field_statuses"`
	EvaluatedAt      time.Time               `json:"evaluated_at"`
}

// ValidationSummary holds aggregate counts of validation results.
type ValidationSummary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// ValidationResultItem is a single rule result annotated with its rule metadata.
type ValidationResultItem struct {
	RuleKey       string                    `json:"rule_key"`
	RuleName      string                    `json:"rule_name"`
	RuleType      domain.ValidationRuleType `json:"rule_type"`
	Severity      domain.ValidationSeverity `json:"severity"`
	Passed        bool                      `json:"passed"`
	FieldPath     string                    `json:"field_path"`
	ExpectedValue string                    `json:"expected_value"`
	ActualValue   string                    `json:"actual_value"`
	Message       string                    `json:"message"`
}

// Evaluate runs all registered validators in rule-key order. Individual rule
// failures, including unparseable dates, are reported as failed results rather
// than aborting the report.
func (e *Engine) Evaluate(ctx context.Context, rec *deed.Record) (*Report, error) {
	if rec == nil {
		return nil, domain.ErrInvalidRequest
	}

	var items []ValidationResultItem
	var summary ValidationSummary
	for _, v := range e.registry.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, vr := range v.Validate(ctx, rec) {
			items = append(items, ValidationResultItem{
				RuleKey:       v.RuleKey(),
				RuleName:      v.RuleName(),
				RuleType:      v.RuleType(),
				Severity:      v.Severity(),
				Passed:        vr.Passed,
				FieldPath:     vr.FieldPath,
				ExpectedValue: vr.ExpectedValue,
				ActualValue:   vr.ActualValue,
				Message:       vr.Message,
			})
			summary.Total++
			switch {
			case vr.Passed:
				summary.Passed++
			case v.Severity() == domain.ValidationSeverityError:
				summary.Errors++
			default:
				summary.Warnings++
			}
		}
	}
	if items == nil {
		items = []ValidationResultItem{}
	}

	var status domain.ValidationStatus
	switch {
	case summary.Errors > 0:
		status = domain.ValidationStatusInvalid
	case summary.Warnings > 0:
		status = domain.ValidationStatusWarning
	default:
		status = domain.ValidationStatusValid
	}

	return &Report{
		ID:               uuid.New(),
		DocumentType:     rec.DocumentType,
		ValidationStatus: status,
		Summary:          summary,
		Results:          items,
		FieldStatuses:    ComputeFieldStatuses(items),
		EvaluatedAt:      e.now(),
	}, nil
}
