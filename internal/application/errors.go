package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoFolders  = errors.New("no source code folders configured")
	ErrNoProjects = errors.New("no project root discovered")
	ErrNoMatch    = errors.New("no project matches the query")
)

// DiscoveryError wraps an unrecoverable I/O failure during the mandatory
// cache flush. The run's in-memory results are still valid and are returned
// alongside it; presenting correct-this-run results beats aborting.
type DiscoveryError struct {
	Op  string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery %s failed: %v", e.Op, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}
