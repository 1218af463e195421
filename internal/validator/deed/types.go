package deed

// Record is the strongly-typed representation of a parsed property deed.
type Record struct {
	DocumentType       string      `json:"document_type"`
	DocumentDate       string      `json:"document_date"`
	PropertyValue      float64     `json:"property_value"`
	RegistrationNumber *string     `json:"registration_number"`
	IsNotarized        bool        `json:"is_notarized"`
	GracePeriodDays    *int        `json:"grace_period_days"`
	Signatories        []Signatory `json:"signatories"`
}

// Signatory is a party who signed the deed. DeathDate is empty when the
// signatory is not known to be deceased.
type Signatory struct {
	Name      string `json:"name"`
	DeathDate string `json:"death_date"`
}

// gracePeriod returns the record's grace period, falling back to the default.
func (r *Record) gracePeriod() int {
	if r.GracePeriodDays == nil {
		return DefaultGracePeriodDays
	}
	return *r.GracePeriodDays
}

// ValidationResult is the outcome of a single check within a rule.
type ValidationResult struct {
	Passed        bool
	FieldPath     string
	ExpectedValue string
	ActualValue   string
	Message       string
}
