// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"panchang/internal/core/almanac"
	"panchang/internal/platform/config"
	"panchang/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Almanac *almanac.Almanac
	Now     func() time.Time
}

// Clock returns Now or time.Now when unset so zero Deps work in tests
func (d Deps) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Data returns the embedded almanac, loading it when the caller left it nil
func (d Deps) Data() *almanac.Almanac {
	if d.Almanac != nil {
		return d.Almanac
	}
	return almanac.MustLoad()
}
