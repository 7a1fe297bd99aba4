package api

import (
	"go-record-pipeline/internal/api/handler"
	"go-record-pipeline/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/runs", handler.CreateRun)
	r.GET("/api/v1/runs", handler.ListRuns)
	// More specific routes first
	r.GET("/api/v1/runs/*/errors", handler.GetRunErrors)
	r.GET("/api/v1/runs/*/logs", handler.GetRunLogs)
	r.GET("/api/v1/runs/*/progress", handler.GetRunProgress)
	r.GET("/api/v1/runs/*/files", handler.GetRunFiles)
	// Generic run route last
	r.GET("/api/v1/runs/*", handler.GetRun)
	r.DELETE("/api/v1/runs/*", handler.DeleteRun)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
