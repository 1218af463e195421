package handler

import (
	"deedcheck/internal/domain"
	"deedcheck/internal/validator"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// PosthumousCheckRequest represents the posthumous signature check request body.
type PosthumousCheckRequest struct {
	Signatory       string `json:"signatory" example:"Goradhanbhai Suthar"`
	DeathDate       string `json:"death_date" example:"2016-03-15"`
	DocumentDate    string `json:"document_date" example:"2025-01-10"`
	GracePeriodDays *int   `json:"grace_period_days" example:"7"`
}

// RegistrationCheckRequest represents the Section 17 compliance check request body.
type RegistrationCheckRequest struct {
	DocumentType       string   `json:"document_type" example:"Relinquishment Deed"`
	PropertyValue      *float64 `json:"property_value" binding:"required" example:"750000"`
	RegistrationNumber *string  `json:"registration_number" example:"REG123"`
	IsNotarized        bool     `json:"is_notarized" example:"true"`
}

// --- Response Types ---

// Response is the generic success envelope.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// ErrorResponseBody is the error envelope.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// PosthumousCheckResponse documents the posthumous check payload.
type PosthumousCheckResponse struct {
	Success bool                    `json:"success" example:"true"`
	Data    domain.PosthumousResult `json:"data"`
}

// RegistrationCheckResponse documents the registration check payload.
type RegistrationCheckResponse struct {
	Success bool                      `json:"success" example:"true"`
	Data    domain.RegistrationResult `json:"data"`
}

// DeedValidationResponse documents the deed validation payload.
type DeedValidationResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    validator.Report `json:"data"`
}
