package domain

// RiskLevel grades the likelihood that a posthumous signature is forged.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// LegalStatus is the statutory standing of a property document.
type LegalStatus string

const (
	LegalStatusValid        LegalStatus = "VALID"
	LegalStatusVoidAbInitio LegalStatus = "VOID_AB_INITIO"
)

// ValidationSeverity controls how a failed rule affects the overall status.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// ValidationRuleType categorizes a builtin rule.
type ValidationRuleType string

const (
	ValidationRuleTemporal  ValidationRuleType = "temporal"
	ValidationRuleStatutory ValidationRuleType = "statutory"
	ValidationRuleRequired  ValidationRuleType = "required_field"
)

// ValidationStatus is the aggregate outcome of all rules run against a deed.
type ValidationStatus string

const (
	ValidationStatusValid   ValidationStatus = "valid"
	ValidationStatusWarning ValidationStatus = "warning"
	ValidationStatusInvalid ValidationStatus = "invalid"
)

// FieldValidationStatus is the per-field status derived from rule results.
type FieldValidationStatus string

const (
	FieldStatusValid   FieldValidationStatus = "valid"
	FieldStatusInvalid FieldValidationStatus = "invalid"
	FieldStatusUnsure  FieldValidationStatus = "unsure"
)
