//go:build unix

package filesystem

import (
	"io/fs"
	"syscall"
)

// fileIdentity extracts the device+inode pair backing a directory
func fileIdentity(info fs.FileInfo) (fileID, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileID{}, false
	}
	return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}
