package sim

import "codeberg.org/mutker/motormon/internal/logger"

var targets = map[Mode]Target{
	ModeBooting:     {RMS: 0.02, Kurtosis: 1.5, Temp: 35.0, FanSpeed: 500},
	ModeHealthy:     {RMS: 0.05, Kurtosis: 2.2, Temp: 48.0, FanSpeed: 1800},
	ModeBearingWear: {RMS: 0.38, Kurtosis: 7.5, Temp: 72.0, FanSpeed: 1750},
	ModeUnbalance:   {RMS: 0.55, Kurtosis: 2.8, Temp: 58.0, FanSpeed: 1780},
}

// TargetFor maps a mode to its physical target vector. An unrecognized
// mode fails closed to the Healthy target.
func TargetFor(mode Mode) Target {
	if target, ok := targets[mode]; ok {
		return target
	}

	logger.Warn().Int("mode", int(mode)).Msg("Unknown mode, using healthy targets")

	return targets[ModeHealthy]
}
