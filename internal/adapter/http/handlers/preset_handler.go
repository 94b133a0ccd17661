package handlers

import (
	"errors"
	"net/http"

	response "telematics_roi/internal/adapter/http/dto/response"
	"telematics_roi/internal/infrastructure/presets"
	"telematics_roi/pkg"

	"github.com/gin-gonic/gin"
)

type PresetCatalog interface {
	List() []presets.Preset
	Get(name string) (presets.Preset, error)
}

type PresetHandler struct {
	catalog PresetCatalog
}

func NewPresetHandler(catalog PresetCatalog) *PresetHandler {
	return &PresetHandler{catalog: catalog}
}

func (h *PresetHandler) List(c *gin.Context) {
	list := h.catalog.List()
	out := make([]response.PresetResponse, 0, len(list))
	for _, p := range list {
		out = append(out, response.FromPreset(p))
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

func (h *PresetHandler) Get(c *gin.Context) {
	p, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		appErr := mapPresetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreset(p))
}

func mapPresetError(err error) *pkg.AppError {
	if errors.Is(err, presets.ErrPresetNotFound) {
		return pkg.NewDomainErrorSimple("PRESET_NOT_FOUND", "Preset not found", http.StatusNotFound)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
