package main

import (
	"go-record-pipeline/internal/api"
	"go-record-pipeline/internal/store"
	"go-record-pipeline/pkg/router"

	_ "go-record-pipeline/docs"
)

// @title Record Pipeline API
// @version 1.0
// @description Converts directories of delimited text files into per-line serialized record files.
// @BasePath /api/v1
func main() {
	// Init DB
	if err := store.InitDB("pipeline.db"); err != nil {
		panic(err)
	}

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Start server
	r.Start(":8080")
}
