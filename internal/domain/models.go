package domain

// PosthumousResult is the verdict of a posthumous signature check.
type PosthumousResult struct {
	Signatory      string    `json:"signatory"`
	IsFraudulent   bool      `json:"is_fraudulent"`
	DaysAfterDeath int       `json:"days_after_death"`
	LegalRisk      RiskLevel `json:"legal_risk"`
	Statute        string    `json:"statute"`
	Recommendation string    `json:"recommendation"`
}

// RegistrationResult is the verdict of a Section 17 registration compliance check.
type RegistrationResult struct {
	Compliant     bool        `json:"compliant"`
	LegalStatus   LegalStatus `json:"legal_status"`
	Section       string      `json:"section"`
	Explanation   string      `json:"explanation"`
	CanBeEvidence bool        `json:"can_be_evidence"`
}
