package ports

import "prospector/internal/domain"

// ScanFunc receives each candidate directory together with its entry names,
// in depth-first order with directories before their children. The return
// value decides whether the walk descends into the directory.
type ScanFunc func(dir string, names []string) (descend bool)

// Scanner walks a directory subtree and yields candidate directories.
// Directories matching an exclude pattern are not descended into, symbolic
// links are never followed, and unreadable directories are skipped with a
// recorded warning rather than aborting the walk.
//
// depth is dir's depth below its configured root. A depth limit always
// counts from the root, so a walk restarted partway down a subtree must be
// handed the offset rather than starting from zero.
type Scanner interface {
	Scan(dir string, depth int, fn ScanFunc) []domain.ScanWarning
}
