package deed

import (
	"fmt"

	"deedcheck/internal/domain"
)

const (
	// DefaultGracePeriodDays allows for bureaucratic delays between a death and
	// the paperwork that was signed before it.
	DefaultGracePeriodDays = 7

	// HighRiskThresholdDays separates MEDIUM from HIGH risk verdicts.
	HighRiskThresholdDays = 365

	// EvidenceActSection68 is cited for every posthumous signature flagged as fraud.
	EvidenceActSection68 = "Indian Evidence Act, 1872, Section 68"

	statuteNotApplicable = "N/A"
)

// DetectPosthumousSignature flags a document executed after its signatory's
// recorded death. Both dates must be YYYY-MM-DD. A document dated on the death
// date itself is day 0 and is never fraudulent.
func DetectPosthumousSignature(signatory, deathDate, documentDate string, gracePeriodDays int) (*domain.PosthumousResult, error) {
	if gracePeriodDays < 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidGracePeriod, gracePeriodDays)
	}

	death, err := parseDate("death_date", deathDate)
	if err != nil {
		return nil, err
	}
	execution, err := parseDate("document_date", documentDate)
	if err != nil {
		return nil, err
	}

	daysDiff := daysBetween(death, execution)

	if daysDiff < 0 {
		return &domain.PosthumousResult{
			Signatory:      signatory,
			IsFraudulent:   false,
			DaysAfterDeath: 0,
			LegalRisk:      domain.RiskLow,
			Statute:        statuteNotApplicable,
			Recommendation: "Document executed before death. No temporal fraud detected.",
		}, nil
	}

	if daysDiff <= gracePeriodDays {
		return &domain.PosthumousResult{
			Signatory:      signatory,
			IsFraudulent:   false,
			DaysAfterDeath: daysDiff,
			LegalRisk:      domain.RiskLow,
			Statute:        statuteNotApplicable,
			Recommendation: fmt.Sprintf("Within %d-day grace period. Possibly legitimate processing delay.", gracePeriodDays),
		}, nil
	}

	risk := domain.RiskMedium
	if daysDiff > HighRiskThresholdDays {
		risk = domain.RiskHigh
	}

	return &domain.PosthumousResult{
		Signatory:      signatory,
		IsFraudulent:   true,
		DaysAfterDeath: daysDiff,
		LegalRisk:      risk,
		Statute:        EvidenceActSection68,
		Recommendation: fmt.Sprintf("Document signed %d days after death. Strong evidence of forgery. "+
			"Recommend forensic signature analysis and investigation of beneficiaries.", daysDiff),
	}, nil
}
