package handler_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deedcheck/internal/csvexport"
	"deedcheck/internal/domain"
	"deedcheck/internal/handler"
	"deedcheck/internal/service"
	"deedcheck/internal/validator"
	"deedcheck/internal/validator/deed"
	"deedcheck/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCheckHandler() (*handler.CheckHandler, *mocks.MockCheckService) {
	mockSvc := new(mocks.MockCheckService)
	return handler.NewCheckHandler(mockSvc, nil), mockSvc
}

func postJSON(t *testing.T, fn gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCheckHandler_Posthumous_Success(t *testing.T) {
	h, mockSvc := newCheckHandler()

	expected := &domain.PosthumousResult{
		Signatory:      "Goradhanbhai Suthar",
		IsFraudulent:   true,
		DaysAfterDeath: 3223,
		LegalRisk:      domain.RiskHigh,
		Statute:        deed.EvidenceActSection68,
	}
	mockSvc.On("CheckPosthumous", mock.Anything, mock.MatchedBy(func(in *service.PosthumousCheckInput) bool {
		return in.Signatory == "Goradhanbhai Suthar" && in.DeathDate == "2016-03-15" &&
			in.DocumentDate == "2025-01-10" && in.GracePeriodDays == nil
	})).Return(expected, nil)

	w := postJSON(t, h.Posthumous, "/api/v1/checks/posthumous",
		`{"signatory":"Goradhanbhai Suthar","death_date":"2016-03-15","document_date":"2025-01-10"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["is_fraudulent"])
	assert.Equal(t, float64(3223), data["days_after_death"])
	assert.Equal(t, "HIGH", data["legal_risk"])
	mockSvc.AssertExpectations(t)
}

func TestCheckHandler_Posthumous_PassesGracePeriod(t *testing.T) {
	h, mockSvc := newCheckHandler()

	mockSvc.On("CheckPosthumous", mock.Anything, mock.MatchedBy(func(in *service.PosthumousCheckInput) bool {
		return in.GracePeriodDays != nil && *in.GracePeriodDays == 30
	})).Return(&domain.PosthumousResult{LegalRisk: domain.RiskLow, Statute: "N/A"}, nil)

	w := postJSON(t, h.Posthumous, "/api/v1/checks/posthumous",
		`{"death_date":"2020-01-01","document_date":"2020-01-21","grace_period_days":30}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCheckHandler_Posthumous_MissingDatesReachEvaluator(t *testing.T) {
	h, mockSvc := newCheckHandler()

	mockSvc.On("CheckPosthumous", mock.Anything, mock.MatchedBy(func(in *service.PosthumousCheckInput) bool {
		return in.DeathDate == "" && in.DocumentDate == ""
	})).Return(nil, fmt.Errorf("checking posthumous signature: %w", domain.ErrInvalidDateFormat))

	w := postJSON(t, h.Posthumous, "/api/v1/checks/posthumous", `{"signatory":"A"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_DATE_FORMAT", resp.Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestCheckHandler_Posthumous_MalformedBody(t *testing.T) {
	h, mockSvc := newCheckHandler()

	w := postJSON(t, h.Posthumous, "/api/v1/checks/posthumous", `["not","an","object"]`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "CheckPosthumous", mock.Anything, mock.Anything)
}

func TestCheckHandler_Posthumous_InvalidDateFormat(t *testing.T) {
	h, mockSvc := newCheckHandler()

	mockSvc.On("CheckPosthumous", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("checking posthumous signature: %w", domain.ErrInvalidDateFormat))

	w := postJSON(t, h.Posthumous, "/api/v1/checks/posthumous",
		`{"death_date":"15/03/2016","document_date":"2025-01-10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE_FORMAT", decode(t, w).Error.Code)
}

func TestCheckHandler_Registration_Void(t *testing.T) {
	h, mockSvc := newCheckHandler()

	mockSvc.On("CheckRegistration", mock.Anything, mock.MatchedBy(func(in *service.RegistrationCheckInput) bool {
		return in.DocumentType == "Relinquishment Deed" && in.PropertyValue == 750000 &&
			in.RegistrationNumber == nil && in.IsNotarized
	})).Return(&domain.RegistrationResult{
		Compliant:   false,
		LegalStatus: domain.LegalStatusVoidAbInitio,
		Section:     deed.RegistrationActSection17,
	}, nil)

	w := postJSON(t, h.Registration, "/api/v1/checks/registration",
		`{"document_type":"Relinquishment Deed","property_value":750000,"is_notarized":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "VOID_AB_INITIO", data["legal_status"])
	assert.Equal(t, false, data["can_be_evidence"])
	mockSvc.AssertExpectations(t)
}

func TestCheckHandler_Registration_NonNumericValue(t *testing.T) {
	h, mockSvc := newCheckHandler()

	w := postJSON(t, h.Registration, "/api/v1/checks/registration",
		`{"document_type":"Sale Deed","property_value":"lots"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_PROPERTY_VALUE", decode(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "CheckRegistration", mock.Anything, mock.Anything)
}

func TestCheckHandler_Registration_MissingValue(t *testing.T) {
	h, _ := newCheckHandler()

	w := postJSON(t, h.Registration, "/api/v1/checks/registration", `{"document_type":"Sale Deed"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w).Error.Code)
}

func TestCheckHandler_ValidateDeed(t *testing.T) {
	h, mockSvc := newCheckHandler()

	report := &validator.Report{
		DocumentType:     "Sale Deed",
		ValidationStatus: domain.ValidationStatusValid,
		Summary:          validator.ValidationSummary{Total: 1, Passed: 1},
		Results:          []validator.ValidationResultItem{},
		FieldStatuses:    map[string]*validator.FieldStatus{},
	}
	mockSvc.On("ValidateDeed", mock.Anything, mock.MatchedBy(func(rec *deed.Record) bool {
		return rec.DocumentType == "Sale Deed" && len(rec.Signatories) == 1 &&
			rec.Signatories[0].DeathDate == "2020-05-30"
	})).Return(report, nil)

	w := postJSON(t, h.ValidateDeed, "/api/v1/deeds/validate",
		`{"document_type":"Sale Deed","document_date":"2020-06-01","property_value":500000,`+
			`"signatories":[{"name":"Late Seller","death_date":"2020-05-30"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "valid", data["validation_status"])
	mockSvc.AssertExpectations(t)
}

func TestCheckHandler_ValidateDeed_CSV(t *testing.T) {
	h, mockSvc := newCheckHandler()

	report := &validator.Report{
		DocumentType:     "Relinquishment Deed",
		ValidationStatus: domain.ValidationStatusInvalid,
		EvaluatedAt:      time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		Results: []validator.ValidationResultItem{
			{RuleKey: "deed.registration.section17", Severity: domain.ValidationSeverityError, FieldPath: "registration_number"},
		},
	}
	mockSvc.On("ValidateDeed", mock.Anything, mock.Anything).Return(report, nil)

	w := postJSON(t, h.ValidateDeed, "/api/v1/deeds/validate?format=csv", `{"document_type":"Relinquishment Deed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Relinquishment_Deed_validation_2025-01-10.csv")

	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, csvexport.BOM))
	rows, err := csv.NewReader(bytes.NewReader(body[len(csvexport.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Rule Key", rows[0][0])
	assert.Equal(t, "deed.registration.section17", rows[1][0])
	assert.Equal(t, "No", rows[1][4])
}

func TestCheckHandler_ValidateDeed_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"grace period", fmt.Errorf("validating deed: %w", domain.ErrInvalidGracePeriod), http.StatusBadRequest, "INVALID_GRACE_PERIOD"},
		{"canceled", fmt.Errorf("validating deed: %w", context.Canceled), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockSvc := newCheckHandler()
			mockSvc.On("ValidateDeed", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := postJSON(t, h.ValidateDeed, "/api/v1/deeds/validate", `{"document_type":"Will"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w).Error.Code)
		})
	}
}

func TestCheckHandler_ValidateDeed_MalformedBody(t *testing.T) {
	h, _ := newCheckHandler()

	w := postJSON(t, h.ValidateDeed, "/api/v1/deeds/validate", `{"document_type":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w).Error.Code)
}

func TestCheckHandler_RegistrationTypes(t *testing.T) {
	h, mockSvc := newCheckHandler()

	mockSvc.On("RegistrationRules").Return(service.RegistrationRules{
		MandatoryTypes:  deed.MandatoryTypes(),
		ThresholdRupees: deed.RegistrationThresholdRupees,
		Section:         deed.RegistrationActSection17,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/rules/registration-types", http.NoBody)
	h.RegistrationTypes(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Len(t, data["mandatory_types"], 7)
	assert.Equal(t, float64(100), data["threshold_rupees"])
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode string
	}{
		{domain.ErrInvalidDateFormat, "INVALID_DATE_FORMAT"},
		{domain.ErrInvalidPropertyValue, "INVALID_PROPERTY_VALUE"},
		{domain.ErrInvalidGracePeriod, "INVALID_GRACE_PERIOD"},
		{domain.ErrInvalidRequest, "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		status, code, msg := handler.MapDomainError(fmt.Errorf("wrapped: %w", tt.err))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, tt.wantCode, code)
		assert.Contains(t, msg, tt.err.Error())
	}

	status, code, msg := handler.MapDomainError(errors.New("db exploded"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", code)
	assert.NotContains(t, msg, "db exploded")
}
