package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExporter(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "run.json")
	exporter := NewExporter(path)
	records := []Record{
		{Iteration: 1, Elapsed: 0, Temperature: 56, PumpSetpoint: 60, FanSetpoint: 60, Event: EventSample},
		{Iteration: 2, Elapsed: 500 * time.Millisecond, Temperature: 86, Event: EventShutdown},
	}

	// WHEN
	for _, record := range records {
		assert.NoError(t, exporter.Handle(record))
	}
	err := exporter.Close()

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var result export
	assert.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, records, result.Records)
	assert.Contains(t, string(data), `"event": "shutdown"`)
}

func TestExporter_NoRecords(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "run.json")
	exporter := NewExporter(path)

	// WHEN
	err := exporter.Close()

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"records": []}`, string(data))
}
