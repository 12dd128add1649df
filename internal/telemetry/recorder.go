package telemetry

import (
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/coolant2go/coolant2go/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// ActuatorSnapshot is the last known state of a single actuator
type ActuatorSnapshot struct {
	Id       string  `json:"id"`
	Signal   float64 `json:"signal"`
	Setpoint float64 `json:"setpoint"`
}

type Summary struct {
	Iterations       int           `json:"iterations"`
	Elapsed          time.Duration `json:"elapsed"`
	FinalTemperature float64       `json:"finalTemperature"`
	MinTemperature   float64       `json:"minTemperature"`
	MaxTemperature   float64       `json:"maxTemperature"`
	// average over the most recent iterations
	RecentAvgTemperature float64 `json:"recentAvgTemperature"`
	// maximum over the most recent iterations
	RecentMaxTemperature float64 `json:"recentMaxTemperature"`
	Shutdown             bool    `json:"shutdown"`
}

// Recorder keeps the records of the current run in memory, so that
// they can be queried while the control loop is running.
type Recorder struct {
	mu      sync.RWMutex
	records []Record
	window  *rolling.PointPolicy
	summary Summary

	actuators cmap.ConcurrentMap[string, ActuatorSnapshot]
}

// NewRecorder creates a Recorder whose "recent" statistics cover the last
// windowSize records. The window starts out filled with initialTemperature.
func NewRecorder(windowSize int, initialTemperature float64) *Recorder {
	if windowSize <= 0 {
		windowSize = 1
	}
	window := util.CreateRollingWindow(windowSize)
	fillWindow(window, windowSize, initialTemperature)

	return &Recorder{
		window: window,
		summary: Summary{
			FinalTemperature:     initialTemperature,
			MinTemperature:       initialTemperature,
			MaxTemperature:       initialTemperature,
			RecentAvgTemperature: initialTemperature,
			RecentMaxTemperature: initialTemperature,
		},
		actuators: cmap.New[ActuatorSnapshot](),
	}
}

func fillWindow(window *rolling.PointPolicy, size int, value float64) {
	for i := 0; i < size; i++ {
		window.Append(value)
	}
}

func (r *Recorder) Handle(record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	r.window.Append(record.Temperature)

	r.summary.Iterations = record.Iteration
	r.summary.Elapsed = record.Elapsed
	r.summary.FinalTemperature = record.Temperature
	r.summary.MinTemperature = min(r.summary.MinTemperature, record.Temperature)
	r.summary.MaxTemperature = max(r.summary.MaxTemperature, record.Temperature)
	r.summary.RecentAvgTemperature = util.GetWindowAvg(r.window)
	r.summary.RecentMaxTemperature = util.GetWindowMax(r.window)
	if record.Event == EventShutdown {
		r.summary.Shutdown = true
	}

	for _, id := range Actuators {
		r.actuators.Set(id, ActuatorSnapshot{
			Id:       id,
			Signal:   record.Signal(id),
			Setpoint: record.Setpoint(id),
		})
	}
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

// Latest returns the most recent record, if any
func (r *Recorder) Latest() (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.records) <= 0 {
		return Record{}, false
	}
	return r.records[len(r.records)-1], true
}

// Records returns a copy of the last n records, or all of them if n <= 0
func (r *Recorder) Records(n int) []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	start := 0
	if n > 0 && n < len(r.records) {
		start = len(r.records) - n
	}
	result := make([]Record, len(r.records)-start)
	copy(result, r.records[start:])
	return result
}

func (r *Recorder) Summary() Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summary
}

func (r *Recorder) Actuator(id string) (ActuatorSnapshot, bool) {
	return r.actuators.Get(id)
}

func (r *Recorder) Actuators() map[string]ActuatorSnapshot {
	return r.actuators.Items()
}
