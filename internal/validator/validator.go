package validator

import (
	"context"

	"deedcheck/internal/domain"
	"deedcheck/internal/validator/deed"
)

// Validator is the interface for a single built-in validation rule.
type Validator interface {
	Validate(ctx context.Context, data *deed.Record) []deed.ValidationResult
	RuleKey() string
	RuleName() string
	RuleType() domain.ValidationRuleType
	Severity() domain.ValidationSeverity
}
