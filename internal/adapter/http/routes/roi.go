package routes

import (
	"telematics_roi/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRoi       = "/roi"
	PathEstimates = "/estimates"
	PathPresets   = "/presets"
)

func addRoiRoutes(rg *gin.RouterGroup, roiHandler *handlers.RoiHandler, estimateHandler *handlers.EstimateHandler, presetHandler *handlers.PresetHandler) {
	roi := rg.Group(PathRoi)
	{
		roi.POST("/validate", roiHandler.Validate)
		roi.POST("/calculate", roiHandler.Calculate)
		roi.GET("/calculate", roiHandler.CalculateFromQuery)
		roi.POST("/compare", roiHandler.Compare)
		roi.POST("/share", roiHandler.Share)
		roi.GET("/timeline.csv", roiHandler.ExportTimelineCSV)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}

	presets := rg.Group(PathPresets)
	{
		presets.GET("", presetHandler.List)
		presets.GET("/:name", presetHandler.Get)
	}
}
