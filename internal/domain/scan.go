package domain

import "fmt"

// DefaultExcludes are directory patterns never descended into. Dependency
// and VCS folders dominate scan cost on real checkouts.
var DefaultExcludes = []string{".git", "node_modules", "target"}

// ScanWarning records a directory that was skipped during a walk, typically
// because it could not be read or vanished mid-scan. Warnings are reported,
// never fatal to the scan.
type ScanWarning struct {
	Path string
	Err  error
}

func (w ScanWarning) String() string {
	return fmt.Sprintf("skipped %s: %v", w.Path, w.Err)
}
