package handlers

import (
	"bytes"
	"net/http"

	request "telematics_roi/internal/adapter/http/dto/request"
	response "telematics_roi/internal/adapter/http/dto/response"
	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/domain/roi"
	"telematics_roi/internal/usecase"
	"telematics_roi/pkg"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculate = "/v1/roi/calculate"
	modeParam     = "mode"
)

// RoiHandler serves stateless recomputation: every request carries the full
// input record (or a share-link query) and nothing is kept between calls.
type RoiHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewRoiHandler(uc usecase.IEstimateUseCase) *RoiHandler {
	return &RoiHandler{usecase: uc}
}

// Validate always answers 200; the body says whether the inputs are valid.
func (h *RoiHandler) Validate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoiPayload.HTTPStatus, errInvalidRoiPayload.ToHTTPError())
		return
	}

	v := h.usecase.Validate(c.Request.Context(), payload.RawInputs())
	c.JSON(http.StatusOK, response.FromValidation(v))
}

func (h *RoiHandler) Calculate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoiPayload.HTTPStatus, errInvalidRoiPayload.ToHTTPError())
		return
	}

	h.calculate(c, payload.ToCommand())
}

// CalculateFromQuery reads a share-link query. Missing inputs take their
// defaults.
func (h *RoiHandler) CalculateFromQuery(c *gin.Context) {
	h.calculate(c, commandFromQuery(c))
}

func (h *RoiHandler) calculate(c *gin.Context, cmd usecase.CalculateCommand) {
	calc, err := h.usecase.Calculate(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(calc))
}

func (h *RoiHandler) Compare(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoiPayload.HTTPStatus, errInvalidRoiPayload.ToHTTPError())
		return
	}

	calcs, err := h.usecase.CompareScenarios(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculations(calcs))
}

// Share validates the inputs and returns the compact query string that
// reproduces them. Only values that differ from the defaults are written.
func (h *RoiHandler) Share(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoiPayload.HTTPStatus, errInvalidRoiPayload.ToHTTPError())
		return
	}

	mode, ok := roi.ParseMode(payload.Mode)
	if !ok {
		appErr := mapEstimateError(usecase.ErrInvalidMode)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	v := h.usecase.Validate(c.Request.Context(), payload.RawInputs())
	if !v.Valid {
		appErr := errInvalidInputs.WithDetails(v.Errors)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	values := roi.EncodeQuery(v.Inputs, roi.ParseScenario(payload.Scenario))
	if mode != entities.ModeTimeline {
		values.Set(modeParam, string(mode))
	}
	query := values.Encode()
	path := PathCalculate
	if query != "" {
		path += "?" + query
	}
	c.JSON(http.StatusOK, response.ShareResponse{Query: query, Path: path})
}

// ExportTimelineCSV takes the same query as CalculateFromQuery and returns
// the monthly timeline as CSV. The mode parameter is ignored.
func (h *RoiHandler) ExportTimelineCSV(c *gin.Context) {
	cmd := commandFromQuery(c)
	cmd.Mode = string(entities.ModeTimeline)

	calc, err := h.usecase.Calculate(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := roi.WriteTimelineCSV(&buf, calc.Inputs.StartMonth, calc.Results.Timeline); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="roi-timeline.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func commandFromQuery(c *gin.Context) usecase.CalculateCommand {
	raw, scenario := roi.DecodeQuery(c.Request.URL.Query())
	return usecase.CalculateCommand{
		Inputs:   roi.MergeDefaults(raw),
		Scenario: string(scenario),
		Mode:     c.Query(modeParam),
	}
}
