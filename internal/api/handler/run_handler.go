package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go-record-pipeline/internal/model"
	"go-record-pipeline/internal/pipeline"
	"go-record-pipeline/internal/store"
	"go-record-pipeline/pkg/utils"

	"github.com/google/uuid"
)

// CreateRun creates a new conversion run
// @Summary Create a new conversion run
// @Description Start converting a directory of delimited data files into per-line record files
// @Tags runs
// @Accept json
// @Produce json
// @Param run body model.ConversionJobSpec true "Run configuration"
// @Success 200 {object} map[string]interface{} "Run created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [post]
func CreateRun(w http.ResponseWriter, r *http.Request) {
	var spec model.ConversionJobSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	// 1. Validate payload
	if spec.DataDir == "" || spec.OutDir == "" {
		http.Error(w, "dataDir and outDir are required", http.StatusBadRequest)
		return
	}
	if spec.Workers <= 0 {
		spec.Workers = runtime.NumCPU()
	}

	// 2. Generate run ID
	runID := uuid.New().String()

	// 3. Save run to DB
	if err := store.SaveRun(runID, spec); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	// 4. Start the pipeline asynchronously
	ctx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(spec.Timeout))

	go func() {
		defer cancel()
		// Run records its own failure status and errors
		pipeline.Run(ctx, runID, spec)
	}()

	// 5. Return response
	resp := map[string]interface{}{
		"message":   "Run created successfully!",
		"runID":     runID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListRuns retrieves all conversion runs
// @Summary List all runs
// @Description Get a list of all conversion runs with their current status and progress
// @Tags runs
// @Accept json
// @Produce json
// @Success 200 {array} map[string]interface{} "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetRun retrieves a specific conversion run
// @Summary Get run
// @Description Retrieve details of a specific conversion run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "")
	if !ok {
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetRunErrors retrieves errors for a run
// @Summary Get run errors
// @Description Retrieve all per-line and run-level errors recorded during a run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run errors"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/errors")
	if !ok {
		return
	}

	errors, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"errors": errors,
		"count":  len(errors),
	})
}

// GetRunLogs retrieves structured log events for a run
// @Summary Get run logs
// @Description Retrieve the structured log events recorded during a run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run logs"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/logs [get]
func GetRunLogs(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/logs")
	if !ok {
		return
	}

	logs, err := store.GetRunLogs(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve logs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"logs":   logs,
		"count":  len(logs),
	})
}

// GetRunProgress retrieves the progress counters of a run
// @Summary Get run progress
// @Description Retrieve processed and total line counters for a run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run progress"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id}/progress [get]
func GetRunProgress(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/progress")
	if !ok {
		return
	}

	progress, err := store.GetRunProgress(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(progress)
}

// GetRunFiles lists the record files under a run's output directory
// @Summary Get run output files
// @Description List the record files currently present in the run's output directory
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run output files"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/files [get]
func GetRunFiles(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/files")
	if !ok {
		return
	}

	spec, err := store.GetRunSpec(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	files, err := utils.NewOutputManager(spec.OutDir).ListRecordFiles()
	if err != nil {
		http.Error(w, "Failed to list output files", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"outDir": spec.OutDir,
		"files":  files,
		"count":  len(files),
	})
}

// DeleteRun deletes a run's tracking data
// @Summary Delete run
// @Description Delete a run and its recorded errors and logs; record files already written are kept
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run deleted"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id} [delete]
func DeleteRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "")
	if !ok {
		return
	}

	if _, err := store.GetRun(runID); err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	if err := store.DeleteRun(runID); err != nil {
		http.Error(w, "Failed to delete run", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Run deleted successfully",
		"run_id":  runID,
	})
}

// runIDFromPath extracts the run ID between the runs prefix and the given
// suffix, writing a 400 response when the path does not fit.
func runIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/runs/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}
