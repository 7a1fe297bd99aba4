package model

// Record represents one parsed input line prior to serialization
type Record struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// InputLine is one raw line of a data file plus its source path, kept for
// error attribution
type InputLine struct {
	Text   string
	Source string
}

// WorkKind selects the job variant carried by a WorkItem
type WorkKind int

const (
	// CountJob counts the lines of one data file (phase 1)
	CountJob WorkKind = iota
	// ProcessJob converts one input line into a record file (phase 2)
	ProcessJob
)

// WorkItem is one unit of dispatch to the worker pool
type WorkItem struct {
	Kind WorkKind
	Path string    // CountJob: file whose lines are counted
	Line InputLine // ProcessJob: line to convert
}

// WorkResult carries the outcome of one WorkItem. Count and Err belong to
// CountJobs; Status belongs to ProcessJobs.
type WorkResult struct {
	Count  int
	Err    error
	Status Status
}

// ConversionJobSpec defines one directory-to-records conversion run
type ConversionJobSpec struct {
	DataDir string `json:"dataDir" yaml:"data_dir"`
	OutDir  string `json:"outDir" yaml:"out_dir"`
	Workers int    `json:"workers" yaml:"workers"`           // pool size, defaults to the host core count
	Timeout string `json:"timeout,omitempty" yaml:"timeout"` // e.g. "5m", applied to API-started runs only
}
