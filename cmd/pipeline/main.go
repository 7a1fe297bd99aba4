package main

import (
	"context"
	"flag"
	"log"
	"runtime"

	"go-record-pipeline/internal/config"
	"go-record-pipeline/internal/model"
	"go-record-pipeline/internal/pipeline"
	"go-record-pipeline/internal/store"

	"github.com/google/uuid"
)

func main() {
	var (
		dataDir    = flag.String("data_dir", "./data/names", "directory of data files")
		outDir     = flag.String("out_dir", "output", "directory to output record files")
		numWorkers = flag.Int("num_workers", runtime.NumCPU(), "number of pool workers")
		jobFile    = flag.String("job", "", "optional YAML job spec, overrides the directory flags")
		dbPath     = flag.String("db", "pipeline.db", "path of the run tracking database")
	)
	flag.Parse()

	spec := model.ConversionJobSpec{
		DataDir: *dataDir,
		OutDir:  *outDir,
		Workers: *numWorkers,
	}
	if *jobFile != "" {
		loaded, err := config.LoadJobSpec(*jobFile)
		if err != nil {
			log.Fatal(err)
		}
		spec = *loaded
		if spec.Workers <= 0 {
			spec.Workers = *numWorkers
		}
	}

	if err := store.InitDB(*dbPath); err != nil {
		log.Fatalf("failed to open tracking database %s: %v", *dbPath, err)
	}

	runID := uuid.New().String()
	if err := store.SaveRun(runID, spec); err != nil {
		log.Fatalf("failed to record run: %v", err)
	}

	if err := pipeline.Run(context.Background(), runID, spec); err != nil {
		log.Fatalf("run %s failed: %v", runID, err)
	}
}
