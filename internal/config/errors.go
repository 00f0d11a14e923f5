package config

import "codeberg.org/mutker/motormon/internal/errors"

const (
	ErrInvalidInterval    = errors.ErrorCode("config_invalid_interval")
	ErrInvalidBoot        = errors.ErrorCode("config_invalid_boot_duration")
	ErrInvalidDwell       = errors.ErrorCode("config_invalid_dwell_interval")
	ErrInvalidProbability = errors.ErrorCode("config_invalid_fault_probability")
	ErrInvalidGain        = errors.ErrorCode("config_invalid_gain")
	ErrInvalidNoise       = errors.ErrorCode("config_invalid_noise")
	ErrInvalidDBPath      = errors.ErrorCode("config_invalid_db_path")
)
