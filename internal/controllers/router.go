package controllers

import "github.com/gin-gonic/gin"

// SetupRouter registers every route on a new engine.
func SetupRouter(ctrl *Controller, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)

	r.GET("/healthz", ctrl.Health)
	r.POST("/upload", ctrl.Upload)

	api := r.Group("/api")
	api.GET("/highest_volume", ctrl.HighestVolume)
	api.GET("/average_close", ctrl.AverageClose)
	api.GET("/average_vwap", ctrl.AverageVWAP)
	api.GET("/ingestions/:id", ctrl.GetIngestion)

	return r
}
