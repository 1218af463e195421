package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deedcheck/internal/csvexport"
	"deedcheck/internal/domain"
	"deedcheck/internal/service"
	"deedcheck/internal/validator"
	"deedcheck/internal/validator/deed"
)

// CheckHandler handles fraud and compliance check endpoints.
type CheckHandler struct {
	checkService service.CheckService
	log          *zap.Logger
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(checkService service.CheckService, log *zap.Logger) *CheckHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckHandler{checkService: checkService, log: log}
}

// Posthumous handles POST /api/v1/checks/posthumous
// @Summary Detect a posthumous signature
// @Description Flags a document executed after the signatory's recorded death (Indian Evidence Act, Section 68)
// @Tags checks
// @Accept json
// @Produce json
// @Param request body PosthumousCheckRequest true "Signatory and dates (YYYY-MM-DD)"
// @Success 200 {object} PosthumousCheckResponse "Verdict"
// @Failure 400 {object} ErrorResponseBody "Invalid request or date format"
// @Router /checks/posthumous [post]
func (h *CheckHandler) Posthumous(c *gin.Context) {
	var req PosthumousCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON object")
		return
	}

	result, err := h.checkService.CheckPosthumous(c.Request.Context(), &service.PosthumousCheckInput{
		Signatory:       req.Signatory,
		DeathDate:       req.DeathDate,
		DocumentDate:    req.DocumentDate,
		GracePeriodDays: req.GracePeriodDays,
	})
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	RespondOK(c, result)
}

// Registration handles POST /api/v1/checks/registration
// @Summary Check Section 17 registration compliance
// @Description Decides whether an unregistered property deed is void ab initio (Registration Act 1908, Sections 17 and 49)
// @Tags checks
// @Accept json
// @Produce json
// @Param request body RegistrationCheckRequest true "Deed type, value and registration details"
// @Success 200 {object} RegistrationCheckResponse "Verdict"
// @Failure 400 {object} ErrorResponseBody "Invalid request or non-numeric property value"
// @Router /checks/registration [post]
func (h *CheckHandler) Registration(c *gin.Context) {
	var req RegistrationCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "property_value" {
			HandleError(c, h.log, fmt.Errorf("%w: got JSON %s", domain.ErrInvalidPropertyValue, typeErr.Value))
			return
		}
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "property_value is required and must be a number")
		return
	}

	result, err := h.checkService.CheckRegistration(c.Request.Context(), &service.RegistrationCheckInput{
		DocumentType:       req.DocumentType,
		PropertyValue:      *req.PropertyValue,
		RegistrationNumber: req.RegistrationNumber,
		IsNotarized:        req.IsNotarized,
	})
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	RespondOK(c, result)
}

// ValidateDeed handles POST /api/v1/deeds/validate
// @Summary Validate a parsed deed
// @Description Runs every builtin deed rule (required fields, posthumous signatures, Section 17) and aggregates a report
// @Tags deeds
// @Accept json
// @Produce json
// @Produce text/csv
// @Param request body deed.Record true "Parsed deed"
// @Param format query string false "Response format: json (default) or csv"
// @Success 200 {object} DeedValidationResponse "Validation report"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /deeds/validate [post]
func (h *CheckHandler) ValidateDeed(c *gin.Context) {
	var rec deed.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a deed record")
		return
	}

	report, err := h.checkService.ValidateDeed(c.Request.Context(), &rec)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	if c.Query("format") == "csv" {
		h.writeReportCSV(c, report)
		return
	}

	RespondOK(c, report)
}

func (h *CheckHandler) writeReportCSV(c *gin.Context, report *validator.Report) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, csvexport.BuildFilename(report.DocumentType, report.EvaluatedAt)))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		h.log.Warn("writing csv bom", zap.Error(err))
		return
	}
	if err := csvexport.NewWriter(c.Writer).WriteReport(report); err != nil {
		h.log.Warn("writing csv report", zap.String("report_id", report.ID.String()), zap.Error(err))
	}
}

// RegistrationTypes handles GET /api/v1/rules/registration-types
// @Summary List compulsorily registrable document types
// @Tags rules
// @Produce json
// @Success 200 {object} Response{data=service.RegistrationRules} "Registration rules"
// @Router /rules/registration-types [get]
func (h *CheckHandler) RegistrationTypes(c *gin.Context) {
	RespondOK(c, h.checkService.RegistrationRules())
}
