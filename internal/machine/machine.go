package machine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"codeberg.org/mutker/motormon/internal/classify"
	"codeberg.org/mutker/motormon/internal/config"
	"codeberg.org/mutker/motormon/internal/diagnose"
	"codeberg.org/mutker/motormon/internal/errors"
	"codeberg.org/mutker/motormon/internal/sim"
	"codeberg.org/mutker/motormon/internal/telemetry"
)

// Clock supplies monotonic elapsed time since machine start.
type Clock func() time.Duration

// Machine is one simulated machine instance: a single observed state
// and mode timer advanced once per tick. Ticks are serialized under a
// mutex; each step depends on the previous observed value, and
// interleaved updates would corrupt the drift integration.
type Machine struct {
	mu         sync.Mutex
	clock      Clock
	wall       func() time.Time
	modes      *sim.ModeController
	drift      *sim.Drift
	classifier classify.Classifier
	engine     *diagnose.Engine
	recorder   telemetry.Recorder
	observed   sim.Observed
}

// Option overrides a collaborator, mainly for deterministic testing.
type Option func(*options)

type options struct {
	clock      Clock
	wall       func() time.Time
	rng        *rand.Rand
	classifier classify.Classifier
	recorder   telemetry.Recorder
	observed   *sim.Observed
}

// WithClock injects the elapsed-time source.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithWallClock injects the wall-clock source used for record timestamps.
func WithWallClock(wall func() time.Time) Option {
	return func(o *options) {
		o.wall = wall
	}
}

// WithRand injects the per-instance random source shared by the drift
// simulation and the mode controller.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithClassifier injects a classifier variant.
func WithClassifier(classifier classify.Classifier) Option {
	return func(o *options) {
		o.classifier = classifier
	}
}

// WithRecorder injects a telemetry history recorder.
func WithRecorder(recorder telemetry.Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

// WithObserved sets the initial observed state instead of the cold vector.
func WithObserved(observed sim.Observed) Option {
	return func(o *options) {
		o.observed = &observed
	}
}

func New(cfg *config.Config, opts ...Option) (*Machine, error) {
	errFactory := errors.New()

	if cfg == nil {
		return nil, errFactory.New(errors.ErrMissingConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		wall: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.clock == nil {
		start := time.Now()
		o.clock = func() time.Duration {
			return time.Since(start)
		}
	}

	if o.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = rand.New(rand.NewSource(seed))
	}

	if o.classifier == nil {
		o.classifier = classify.New(cfg.Model)
	}

	if o.recorder == nil {
		recorder, err := telemetry.NewService(telemetry.Config{
			Enabled: cfg.Telemetry,
			DBPath:  cfg.TelemetryDB,
		})
		if err != nil {
			return nil, err
		}
		o.recorder = recorder
	}

	observed := sim.Cold()
	if o.observed != nil {
		observed = *o.observed
	}

	return &Machine{
		clock: o.clock,
		wall:  o.wall,
		modes: sim.NewModeController(sim.ModeConfig{
			BootDuration:     cfg.BootDuration,
			DwellInterval:    cfg.DwellInterval,
			FaultProbability: cfg.FaultProbability,
		}, o.rng),
		drift: sim.NewDrift(sim.DriftConfig{
			Gain: sim.ChannelParams{
				RMS:      cfg.Gain.RMS,
				Kurtosis: cfg.Gain.Kurtosis,
				Temp:     cfg.Gain.Temp,
				FanSpeed: cfg.Gain.FanSpeed,
			},
			Noise: sim.ChannelParams{
				RMS:      cfg.Noise.RMS,
				Kurtosis: cfg.Noise.Kurtosis,
				Temp:     cfg.Noise.Temp,
				FanSpeed: cfg.Noise.FanSpeed,
			},
		}, o.rng),
		classifier: o.classifier,
		engine:     diagnose.NewEngine(),
		recorder:   o.recorder,
		observed:   observed,
	}, nil
}

// Tick advances the simulation one step and assembles the telemetry
// record: mode controller, target lookup, drift integration, feature
// extraction, classification (suppressed while booting), diagnosis,
// assembly. The record is recorded to history before return.
func (m *Machine) Tick(ctx context.Context) (telemetry.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mode := m.modes.Advance(m.clock())
	target := sim.TargetFor(mode)
	m.observed = m.drift.Step(m.observed, target)

	features := classify.Extract(m.observed.RMS, m.observed.Kurtosis)

	result := classify.Result{Code: classify.CodeOptimal, Label: classify.LabelOptimal}
	if mode != sim.ModeBooting {
		result = m.classifier.Classify(features)
	}

	diagnosis := m.engine.Diagnose(mode, result, features)
	record := telemetry.Assemble(m.wall(), m.observed, mode, result, diagnosis)

	if err := m.recorder.Record(ctx, &record); err != nil {
		return telemetry.Record{}, err
	}

	return record, nil
}

// Observed returns a copy of the current simulation state.
func (m *Machine) Observed() sim.Observed {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.observed
}

// Close releases the history recorder.
func (m *Machine) Close() error {
	return m.recorder.Close()
}
