package sim

// Mode is the operating mode of the simulated machine.
type Mode int

const (
	ModeBooting Mode = iota
	ModeHealthy
	ModeBearingWear
	ModeUnbalance
)

// String returns the wire representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBooting:
		return "BOOT_SEQUENCE"
	case ModeHealthy:
		return "HEALTHY"
	case ModeBearingWear:
		return "BEARING_WEAR"
	case ModeUnbalance:
		return "UNBALANCE"
	default:
		return "UNKNOWN"
	}
}

// Target is the steady-state vector the drift simulation converges toward.
// Immutable once produced by TargetFor.
type Target struct {
	RMS      float64
	Kurtosis float64
	Temp     float64
	FanSpeed float64
}

// Observed is the persistent simulation state, advanced once per tick.
type Observed struct {
	RMS      float64
	Kurtosis float64
	Temp     float64
	FanSpeed float64
}

// Cold returns the observed state of a machine at power-on.
func Cold() Observed {
	return Observed{
		RMS:      0.0,
		Kurtosis: 1.0,
		Temp:     25.0,
		FanSpeed: 0,
	}
}
