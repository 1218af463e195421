package validator

import (
	"deedcheck/internal/domain"
)

// FieldStatus represents the computed validation state for a single field path.
type FieldStatus struct {
	Status   domain.FieldValidationStatus `json:"status"`
	Messages []string                     `json:"messages"`
}

// ComputeFieldStatuses derives per-field validation statuses from rule results.
// A failed error-severity rule marks the field invalid; a failed warning marks it
// unsure unless something already made it invalid.
func ComputeFieldStatuses(results []ValidationResultItem) map[string]*FieldStatus {
	statuses := make(map[string]*FieldStatus)
	for _, r := range results {
		fs, ok := statuses[r.FieldPath]
		if !ok {
			fs = &FieldStatus{Status: domain.FieldStatusValid, Messages: []string{}}
			statuses[r.FieldPath] = fs
		}
		if r.Passed {
			continue
		}
		if r.Severity == domain.ValidationSeverityError {
			fs.Status = domain.FieldStatusInvalid
		} else if fs.Status != domain.FieldStatusInvalid {
			fs.Status = domain.FieldStatusUnsure
		}
		fs.Messages = append(fs.Messages, r.Message)
	}
	return statuses
}
