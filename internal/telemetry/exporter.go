package telemetry

import (
	"encoding/json"
	"fmt"

	"github.com/coolant2go/coolant2go/internal/util"
)

// Exporter writes all records of a run to a JSON file once the run is over.
// The file is replaced atomically.
type Exporter struct {
	path    string
	records []Record
}

type export struct {
	Records []Record `json:"records"`
}

func NewExporter(path string) *Exporter {
	return &Exporter{path: path, records: []Record{}}
}

func (e *Exporter) Handle(record Record) error {
	e.records = append(e.records, record)
	return nil
}

func (e *Exporter) Close() error {
	data, err := json.MarshalIndent(export{Records: e.records}, "", "  ")
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(e.path, data); err != nil {
		return fmt.Errorf("exporting telemetry to %s: %w", e.path, err)
	}
	return nil
}
