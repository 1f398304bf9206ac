// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"celgen-server/commons"
	"celgen-server/handlers"
	"celgen-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1", middlewares.VerifyAPIKeyMiddleware())
	api_v1.POST("/auth/api-keys", handlers.CreateAPIKeyHandler)
	api_v1.GET("/auth/api-keys", handlers.GetAllAPIKeyHandler)
	api_v1.DELETE("/auth/api-keys/:key_id", handlers.DeleteAPIKeyHandler)
	api_v1.POST("/batches", handlers.CreateBatchHandler)
	api_v1.GET("/batches", handlers.GetAllBatchesHandler)
	api_v1.GET("/batches/:batch_id", handlers.GetBatchHandler)
	api_v1.DELETE("/batches/:batch_id", handlers.DeleteBatchHandler)
	api_v1.GET("/batches/:batch_id/export", handlers.ExportBatchHandler)
	api_v1.POST("/batches/:batch_id/publish", handlers.PublishBatchHandler)
	api_v1.GET("/ddds", handlers.GetAllDDDsHandler)
	api_v1.GET("/ddds/:code", handlers.GetDDDHandler)
	api_v1.GET("/event-logs", handlers.GetEventLogsHandler)
	commons.Logger.Info("v1 routes registered successfully")
}
