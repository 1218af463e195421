package deed

import (
	"context"
	"fmt"

	"deedcheck/internal/domain"
)

// fraudValidator runs one of the fraud or compliance checks over a deed.
type fraudValidator struct {
	ruleKey  string
	ruleName string
	ruleType domain.ValidationRuleType
	severity domain.ValidationSeverity
	validate func(*Record) []ValidationResult
}

func (v *fraudValidator) RuleKey() string                     { return v.ruleKey }
func (v *fraudValidator) RuleName() string                    { return v.ruleName }
func (v *fraudValidator) RuleType() domain.ValidationRuleType { return v.ruleType }
func (v *fraudValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *fraudValidator) Validate(_ context.Context, data *Record) []ValidationResult {
	return v.validate(data)
}

func isRegistered(registrationNumber *string) bool {
	return registrationNumber != nil && *registrationNumber != ""
}

// FraudValidators returns the temporal and statutory validators.
func FraudValidators() []*fraudValidator {
	return []*fraudValidator{
		{
			ruleKey: "deed.signatory.posthumous", ruleName: "Temporal: Posthumous Signature",
			ruleType: domain.ValidationRuleTemporal, severity: domain.ValidationSeverityError,
			validate: func(d *Record) []ValidationResult {
				var results []ValidationResult
				grace := d.gracePeriod()
				for i, s := range d.Signatories {
					fp := fmt.Sprintf("signatories[%d].death_date", i)
					expected := fmt.Sprintf("document_date <= death_date + %d days", grace)
					if s.DeathDate == "" {
						results = append(results, ValidationResult{
							Passed: true, FieldPath: fp, ExpectedValue: expected,
							Message: fmt.Sprintf("Temporal: Posthumous Signature: %s has no recorded death, skipping", fp),
						})
						continue
					}
					if d.DocumentDate == "" {
						results = append(results, ValidationResult{
							Passed: true, FieldPath: fp, ExpectedValue: expected, ActualValue: s.DeathDate,
							Message: "Temporal: Posthumous Signature: document date missing, skipping",
						})
						continue
					}
					res, err := DetectPosthumousSignature(s.Name, s.DeathDate, d.DocumentDate, grace)
					if err != nil {
						results = append(results, ValidationResult{
							Passed: false, FieldPath: fp, ExpectedValue: expected, ActualValue: s.DeathDate,
							Message: fmt.Sprintf("Temporal: Posthumous Signature: %v", err),
						})
						continue
					}
					msg := fmt.Sprintf("Temporal: Posthumous Signature: %s signed %d days after death (risk %s)",
						s.Name, res.DaysAfterDeath, res.LegalRisk)
					if res.IsFraudulent {
						msg = fmt.Sprintf("Temporal: Posthumous Signature: %s, %s. %s",
							res.Statute, res.LegalRisk, res.Recommendation)
					}
					results = append(results, ValidationResult{
						Passed: !res.IsFraudulent, FieldPath: fp, ExpectedValue: expected,
						ActualValue: fmt.Sprintf("%d days after death", res.DaysAfterDeath),
						Message:     msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "deed.registration.section17", ruleName: "Statutory: Section 17 Registration",
			ruleType: domain.ValidationRuleStatutory, severity: domain.ValidationSeverityError,
			validate: func(d *Record) []ValidationResult {
				actual := "unregistered"
				if isRegistered(d.RegistrationNumber) {
					actual = *d.RegistrationNumber
				}
				res, err := ValidateSection17Compliance(d.DocumentType, d.PropertyValue, d.RegistrationNumber, d.IsNotarized)
				if err != nil {
					return []ValidationResult{{
						Passed: false, FieldPath: "property_value",
						ExpectedValue: "numeric amount", ActualValue: fmt.Sprintf("%.2f", d.PropertyValue),
						Message: fmt.Sprintf("Statutory: Section 17 Registration: %v", err),
					}}
				}
				return []ValidationResult{{
					Passed: res.Compliant, FieldPath: "registration_number",
					ExpectedValue: fmt.Sprintf("registration for mandatory types valued >= Rs.%d", RegistrationThresholdRupees),
					ActualValue:   actual,
					Message:       "Statutory: Section 17 Registration: " + res.Explanation,
				}}
			},
		},
		{
			ruleKey: "deed.registration.notarization_only", ruleName: "Statutory: Notarization Without Registration",
			ruleType: domain.ValidationRuleStatutory, severity: domain.ValidationSeverityWarning,
			validate: func(d *Record) []ValidationResult {
				passed := !(RequiresRegistration(d.DocumentType) && d.IsNotarized && !isRegistered(d.RegistrationNumber))
				msg := "Statutory: Notarization Without Registration: notarization is not relied on in place of registration"
				if !passed {
					msg = fmt.Sprintf("Statutory: Notarization Without Registration: '%s' is notarized but unregistered; "+
						"notarization is not a substitute for registration", d.DocumentType)
				}
				return []ValidationResult{{
					Passed: passed, FieldPath: "is_notarized",
					ExpectedValue: "registered when notarized",
					ActualValue:   fmt.Sprintf("notarized=%t, registered=%t", d.IsNotarized, isRegistered(d.RegistrationNumber)),
					Message:       msg,
				}}
			},
		},
	}
}
