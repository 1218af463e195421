package deed

import (
	"context"
	"fmt"

	"deedcheck/internal/domain"
)

// requiredFieldValidator checks that a required field is not empty.
type requiredFieldValidator struct {
	ruleKey          string
	ruleName         string
	fieldPath        string
	severity         domain.ValidationSeverity
	extract          func(*Record) string
	perSignatory     bool
	extractSignatory func(*Signatory) string
}

func (v *requiredFieldValidator) RuleKey() string  { return v.ruleKey }
func (v *requiredFieldValidator) RuleName() string { return v.ruleName }
func (v *requiredFieldValidator) RuleType() domain.ValidationRuleType {
	return domain.ValidationRuleRequired
}
func (v *requiredFieldValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *requiredFieldValidator) Validate(_ context.Context, data *Record) []ValidationResult {
	if v.perSignatory {
		results := make([]ValidationResult, 0, len(data.Signatories))
		for i := range data.Signatories {
			val := v.extractSignatory(&data.Signatories[i])
			fieldPath := fmt.Sprintf("signatories[%d].%s", i, lastSegment(v.fieldPath))
			results = append(results, ValidationResult{
				Passed:        val != "",
				FieldPath:     fieldPath,
				ExpectedValue: "non-empty value",
				ActualValue:   val,
				Message:       fieldMessage(val != "", v.ruleName, fieldPath),
			})
		}
		return results
	}

	val := v.extract(data)
	return []ValidationResult{{
		Passed:        val != "",
		FieldPath:     v.fieldPath,
		ExpectedValue: "non-empty value",
		ActualValue:   val,
		Message:       fieldMessage(val != "", v.ruleName, v.fieldPath),
	}}
}

func fieldMessage(passed bool, ruleName, fieldPath string) string {
	if passed {
		return fmt.Sprintf("%s: %s is present", ruleName, fieldPath)
	}
	return fmt.Sprintf("%s: %s is missing or empty", ruleName, fieldPath)
}

// lastSegment turns "signatories[i].name" into "name".
func lastSegment(fieldPath string) string {
	for i := len(fieldPath) - 1; i >= 0; i-- {
		if fieldPath[i] == '.' {
			return fieldPath[i+1:]
		}
	}
	return fieldPath
}

// RequiredFieldValidators returns all required field validators.
func RequiredFieldValidators() []*requiredFieldValidator {
	return []*requiredFieldValidator{
		{
			ruleKey: "req.deed.document_type", ruleName: "Required: Document Type",
			fieldPath: "document_type", severity: domain.ValidationSeverityError,
			extract: func(r *Record) string { return r.DocumentType },
		},
		{
			ruleKey: "req.deed.document_date", ruleName: "Required: Document Date",
			fieldPath: "document_date", severity: domain.ValidationSeverityWarning,
			extract: func(r *Record) string { return r.DocumentDate },
		},
		{
			ruleKey: "req.signatory.name", ruleName: "Required: Signatory Name",
			fieldPath: "signatories[i].name", severity: domain.ValidationSeverityWarning,
			perSignatory: true, extractSignatory: func(s *Signatory) string { return s.Name },
		},
	}
}
