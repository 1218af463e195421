package deed

import (
	"fmt"
	"math"

	"deedcheck/internal/domain"
)

const (
	// RegistrationThresholdRupees is the Section 17(1)(b) value at or above which
	// registration is compulsory.
	RegistrationThresholdRupees = 100

	// RegistrationActSection17 is cited when an unregistered deed is void.
	RegistrationActSection17 = "Registration Act, 1908, Section 17(1)(b) + Section 49"
)

// Instruments that purport to create, assign or extinguish an interest in
// immovable property and so require compulsory registration.
var mandatoryRegistrationTypes = []string{
	"Sale Deed",
	"Gift Deed",
	"Exchange Deed",
	"Relinquishment Deed",
	"Partition Deed",
	"Mortgage Deed",
	"Lease Deed (>1 year)",
}

var mandatoryRegistrationSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(mandatoryRegistrationTypes))
	for _, t := range mandatoryRegistrationTypes {
		m[t] = struct{}{}
	}
	return m
}()

// MandatoryTypes returns a copy of the document types requiring registration.
func MandatoryTypes() []string {
	out := make([]string, len(mandatoryRegistrationTypes))
	copy(out, mandatoryRegistrationTypes)
	return out
}

// RequiresRegistration reports whether documentType is a compulsorily
// registrable instrument. Matching is exact.
func RequiresRegistration(documentType string) bool {
	_, ok := mandatoryRegistrationSet[documentType]
	return ok
}

// ValidateSection17Compliance decides whether a deed is void for want of
// registration. A nil or empty registrationNumber means unregistered.
// Notarization never substitutes for registration.
func ValidateSection17Compliance(documentType string, propertyValue float64, registrationNumber *string, isNotarized bool) (*domain.RegistrationResult, error) {
	if math.IsNaN(propertyValue) || math.IsInf(propertyValue, 0) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPropertyValue, propertyValue)
	}

	requiresRegistration := RequiresRegistration(documentType)
	exceedsThreshold := propertyValue >= RegistrationThresholdRupees
	registered := registrationNumber != nil && *registrationNumber != ""

	if requiresRegistration && exceedsThreshold && !registered {
		explanation := fmt.Sprintf("'%s' of value Rs.%s requires registration under Section 17(1)(b). ",
			documentType, formatRupees(propertyValue))
		if isNotarized {
			explanation += "Notarization does NOT cure the defect. "
		}
		explanation += "Per Section 49, this document cannot be received as evidence of any " +
			"transaction affecting immovable property. STATUS: VOID AB INITIO."

		return &domain.RegistrationResult{
			Compliant:     false,
			LegalStatus:   domain.LegalStatusVoidAbInitio,
			Section:       RegistrationActSection17,
			Explanation:   explanation,
			CanBeEvidence: false,
		}, nil
	}

	return &domain.RegistrationResult{
		Compliant:     true,
		LegalStatus:   domain.LegalStatusValid,
		Section:       statuteNotApplicable,
		Explanation:   fmt.Sprintf("'%s' complies with Registration Act requirements.", documentType),
		CanBeEvidence: true,
	}, nil
}
