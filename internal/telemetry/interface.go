package telemetry

import (
	"context"
	"time"
)

// Record is one tick's complete output. Immutable once assembled;
// owned solely by the caller after return.
type Record struct {
	Timestamp      time.Time
	RMS            float64
	Kurtosis       float64
	Temp           float64
	FanSpeed       int
	Status         string
	StatusCode     int
	Recommendation string
	Mode           string
}

// Recorder persists telemetry history.
type Recorder interface {
	Record(ctx context.Context, record *Record) error
	Close() error
}

// Repository defines the interface for telemetry data storage
type Repository interface {
	Store(ctx context.Context, record *Record) error
	Close() error
}
