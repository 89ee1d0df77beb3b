package config

import "github.com/TFMV/gridbox/pkg/errors"

// Package-specific error codes for config
var (
	ErrFileReadFailed   = errors.MustNewCode("config.file_read_failed")
	ErrParseFailed      = errors.MustNewCode("config.parse_failed")
	ErrValidationFailed = errors.MustNewCode("config.validation_failed")
)
