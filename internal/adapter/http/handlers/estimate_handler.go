package handlers

import (
	"errors"
	"net/http"

	request "telematics_roi/internal/adapter/http/dto/request"
	response "telematics_roi/internal/adapter/http/dto/response"
	"telematics_roi/internal/usecase"
	"telematics_roi/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRoiPayload = pkg.NewDomainErrorSimple("INVALID_ROI_PAYLOAD", "Invalid ROI payload", http.StatusBadRequest)
	errInvalidInputs     = pkg.NewDomainErrorSimple("INVALID_INPUTS", "One or more inputs are invalid", http.StatusUnprocessableEntity)
)

// EstimateHandler handles saved estimates: an input set, scenario and mode
// stored under an id and recalculated on every read.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoiPayload.HTTPStatus, errInvalidRoiPayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.SaveEstimate(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEstimateError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return errInvalidInputs.WithDetails(verr.Errors)
	case errors.Is(err, usecase.ErrInvalidMode):
		return pkg.NewDomainErrorSimple("INVALID_MODE", "Mode must be one of timeline, straight_line", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
