package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockSink struct {
	handled   []Record
	closed    bool
	handleErr error
	closeErr  error
}

func (s *mockSink) Handle(record Record) error {
	s.handled = append(s.handled, record)
	return s.handleErr
}

func (s *mockSink) Close() error {
	s.closed = true
	return s.closeErr
}

func feed(records ...Record) <-chan Record {
	ch := make(chan Record, len(records))
	for _, record := range records {
		ch <- record
	}
	close(ch)
	return ch
}

func TestConsume(t *testing.T) {
	// GIVEN
	first := &mockSink{}
	second := &mockSink{}
	records := []Record{
		{Iteration: 1, Temperature: 56},
		{Iteration: 2, Temperature: 57},
	}

	// WHEN
	err := Consume(feed(records...), first, second)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, records, first.handled)
	assert.Equal(t, records, second.handled)
	assert.True(t, first.closed)
	assert.True(t, second.closed)
}

func TestConsume_FailingSink(t *testing.T) {
	// GIVEN
	handleErr := errors.New("disk full")
	closeErr := errors.New("close failed")
	failing := &mockSink{handleErr: handleErr, closeErr: closeErr}
	healthy := &mockSink{}

	// WHEN
	err := Consume(feed(Record{Iteration: 1}, Record{Iteration: 2}), failing, healthy)

	// THEN
	assert.ErrorIs(t, err, handleErr)
	assert.ErrorIs(t, err, closeErr)
	// a failed sink is not called again
	assert.Len(t, failing.handled, 1)
	assert.Len(t, healthy.handled, 2)
	assert.True(t, failing.closed)
	assert.True(t, healthy.closed)
}

func TestRecord_Accessors(t *testing.T) {
	// GIVEN
	record := Record{PumpSignal: 1, FanSignal: 2, PumpSetpoint: 60, FanSetpoint: 62}

	// THEN
	assert.Equal(t, 1.0, record.Signal(ActuatorPump))
	assert.Equal(t, 2.0, record.Signal(ActuatorFan))
	assert.Equal(t, 60.0, record.Setpoint(ActuatorPump))
	assert.Equal(t, 62.0, record.Setpoint(ActuatorFan))
	assert.Equal(t, 0.0, record.Signal("heater"))
	assert.True(t, IsActuator(ActuatorFan))
	assert.False(t, IsActuator("heater"))
}
