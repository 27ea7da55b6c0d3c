//go:build !unix

package filesystem

import "io/fs"

// fileIdentity has no device+inode notion here; the walk falls back to path
// identity, which is already unique within one call.
func fileIdentity(info fs.FileInfo) (fileID, bool) {
	return fileID{}, false
}
