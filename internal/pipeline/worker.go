package pipeline

import (
	"os"
	"strconv"
	"strings"

	"go-record-pipeline/internal/model"
	"go-record-pipeline/pkg/utils"
)

// fieldDelimiter separates the name and age fields of an input line.
const fieldDelimiter = ","

// Worker converts input lines into serialized record files.
type Worker struct {
	out   *utils.OutputManager
	codec Codec
}

// NewWorker creates a worker writing records under out using codec.
func NewWorker(out *utils.OutputManager, codec Codec) *Worker {
	return &Worker{out: out, codec: codec}
}

// Process converts one input line into a record file and reports a
// per-line Status. Malformed lines and write failures come back as
// failing Statuses, never as errors, so a single bad line cannot abort
// the batch. Exactly one file is created on success and none on failure.
func (w *Worker) Process(line model.InputLine) model.Status {
	fields := strings.Split(line.Text, fieldDelimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) != 2 {
		return model.Errorf("Expected to find 2 fields but found %d", len(fields))
	}

	age, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Errorf("Expected an integer age but found %q", fields[1])
	}

	rec := model.Record{Name: fields[0], Age: age}
	if st := w.writeRecord(rec); !st.Ok() {
		return model.Wrap(st, "Error writing record file")
	}
	return model.Success()
}

// writeRecord encodes rec and writes it to a freshly named record file.
// The partial file is removed on any failure.
func (w *Worker) writeRecord(rec model.Record) model.Status {
	data, err := w.codec.Encode(rec)
	if err != nil {
		return model.Error(err.Error())
	}

	path := w.out.NewRecordPath()
	f, err := os.Create(path)
	if err != nil {
		return model.Error(err.Error())
	}

	n, err := f.Write(data)
	if err != nil {
		f.Close()
		os.Remove(path)
		return model.Error(err.Error())
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return model.Error(err.Error())
	}
	if n == 0 {
		os.Remove(path)
		return model.Error("Wrote 0 bytes to file")
	}
	return model.Success()
}
