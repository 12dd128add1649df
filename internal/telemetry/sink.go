// Package telemetry contains the records emitted by the control loop
// and the consumers that render, export or aggregate them.
package telemetry

import (
	"errors"
	"fmt"
)

// Sink consumes the records of a single run
type Sink interface {
	// Handle is called once for every record, in order
	Handle(record Record) error
	// Close is called once, after the last record
	Close() error
}

// Consume reads all records from in until it is closed and hands
// each of them to all sinks. A failing sink does not stop the others.
func Consume(in <-chan Record, sinks ...Sink) error {
	var errs []error
	failed := make([]bool, len(sinks))

	for record := range in {
		for idx, sink := range sinks {
			if failed[idx] {
				continue
			}
			if err := sink.Handle(record); err != nil {
				failed[idx] = true
				errs = append(errs, fmt.Errorf("handling record %d: %w", record.Iteration, err))
			}
		}
	}

	for _, sink := range sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
