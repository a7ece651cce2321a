package tracking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when a filter's date or speed range is
	// inverted
	ErrInvalidRange = errors.New("invalid filter range")

	// ErrUnsortedInput is returned when a location series is not in
	// ascending timestamp order. It surfaces an upstream bug rather than
	// letting the aggregator silently misreport.
	ErrUnsortedInput = errors.New("location series not sorted by timestamp")

	// ErrAlertNotFound is returned when an acknowledge targets an unknown
	// alert id
	ErrAlertNotFound = errors.New("alert not found")

	// ErrVehicleNotFound is returned when a vehicle id is not present in
	// the current snapshot
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrSnapshotUnavailable is returned before the first successful poll
	ErrSnapshotUnavailable = errors.New("no tracking snapshot published yet")
)

// TransientFetchError wraps a failed telemetry provider request. The
// scheduler reports it to the error sink and keeps the previous snapshot;
// it is never fatal to the polling loop.
type TransientFetchError struct {
	Op  string
	Err error
}

func (e *TransientFetchError) Error() string {
	return fmt.Sprintf("telemetry fetch %s failed: %v", e.Op, e.Err)
}

func (e *TransientFetchError) Unwrap() error {
	return e.Err
}
