package domain

import "errors"

var (
	// ErrConfigurationMissing is returned by a collaborator called without credentials.
	ErrConfigurationMissing = errors.New("configuration missing")
	// ErrDevice is returned when the capture device cannot be opened or read.
	ErrDevice = errors.New("audio device error")
)
