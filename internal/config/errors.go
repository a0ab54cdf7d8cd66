package config

import "errors"

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid configuration")
	// ErrUnknownSite is returned by Config.Site for unconfigured names.
	ErrUnknownSite = errors.New("unknown site")
)
