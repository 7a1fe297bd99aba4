package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"go-record-pipeline/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the tracking database and creates the schema if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			spec TEXT,
			status TEXT,
			processed INTEGER DEFAULT 0,
			total INTEGER DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			source_file TEXT,
			code INTEGER,
			message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			stage TEXT,
			level TEXT,
			message TEXT,
			fields TEXT,
			created_at DATETIME
		);`,
	}
	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores a new conversion run
func SaveRun(runID string, spec model.ConversionJobSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO runs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, specJSON, "pending", now, now)
	return err
}

// UpdateRunStatus updates run status
func UpdateRunStatus(runID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunProgress updates the processed/total counters of a run
func SaveRunProgress(runID string, processed, total int) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET processed = ?, total = ?, updated_at = ? WHERE id = ?`,
		processed, total, now, runID)
	return err
}

// SaveRunError records a fatal run-level error
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO run_errors (run_id, source_file, code, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, "", 1, err.Error(), now)
	return e
}

// SaveLineError records one failing line's Status with its source file
func SaveLineError(runID, sourceFile string, status model.Status) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO run_errors (run_id, source_file, code, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, sourceFile, status.Code, status.Message, now)
	return err
}

// SaveRunLog stores one structured log event for a run
func SaveRunLog(runID, stage, level, message string, fields map[string]interface{}) error {
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO run_logs (run_id, stage, level, message, fields, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, stage, level, message, fieldsJSON, now)
	return err
}

// ListRuns returns all runs with basic info
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, processed, total, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var processed, total int
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &processed, &total, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"processed": processed,
			"total":     total,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches full run spec and status
func GetRun(runID string) (map[string]interface{}, error) {
	var specJSON, status string
	var processed, total int
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT spec, status, processed, total, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&specJSON, &status, &processed, &total, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.ConversionJobSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"spec":      spec,
		"status":    status,
		"processed": processed,
		"total":     total,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// GetRunSpec fetches just the spec of a run
func GetRunSpec(runID string) (model.ConversionJobSpec, error) {
	var spec model.ConversionJobSpec
	var specJSON string
	err := db.QueryRow(`SELECT spec FROM runs WHERE id = ?`, runID).Scan(&specJSON)
	if err != nil {
		return spec, err
	}
	err = json.Unmarshal([]byte(specJSON), &spec)
	return spec, err
}

// GetRunProgress returns the processed/total counters and status of a run
func GetRunProgress(runID string) (map[string]interface{}, error) {
	var status string
	var processed, total int
	err := db.QueryRow(`SELECT status, processed, total FROM runs WHERE id = ?`, runID).
		Scan(&status, &processed, &total)
	if err != nil {
		return nil, err
	}

	pct := 0.0
	if total > 0 {
		pct = float64(processed) * 100 / float64(total)
	}
	return map[string]interface{}{
		"run_id":    runID,
		"status":    status,
		"processed": processed,
		"total":     total,
		"percent":   pct,
	}, nil
}

// GetRunErrors returns all recorded errors for a run, oldest first
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT source_file, code, message, created_at FROM run_errors WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []map[string]interface{}
	for rows.Next() {
		var sourceFile, message string
		var code int
		var createdAt time.Time
		if err := rows.Scan(&sourceFile, &code, &message, &createdAt); err != nil {
			return nil, err
		}
		errors = append(errors, map[string]interface{}{
			"sourceFile": sourceFile,
			"code":       code,
			"message":    message,
			"createdAt":  createdAt,
		})
	}
	return errors, rows.Err()
}

// GetRunLogs returns all structured log events for a run, oldest first
func GetRunLogs(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT stage, level, message, fields, created_at FROM run_logs WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []map[string]interface{}
	for rows.Next() {
		var stage, level, message, fieldsJSON string
		var createdAt time.Time
		if err := rows.Scan(&stage, &level, &message, &fieldsJSON, &createdAt); err != nil {
			return nil, err
		}

		var fields map[string]interface{}
		if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
			fields = map[string]interface{}{"raw": fieldsJSON}
		}
		logs = append(logs, map[string]interface{}{
			"stage":     stage,
			"level":     level,
			"message":   message,
			"fields":    fields,
			"createdAt": createdAt,
		})
	}
	return logs, rows.Err()
}

// DeleteRun removes a run and its errors and logs. Record files already
// written to the output directory are kept.
func DeleteRun(runID string) error {
	if _, err := db.Exec(`DELETE FROM run_errors WHERE run_id = ?`, runID); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM run_logs WHERE run_id = ?`, runID); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM runs WHERE id = ?`, runID)
	return err
}
