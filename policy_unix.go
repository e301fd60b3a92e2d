//go:build !windows

package fileicon

import "os"

// hasExecBit reports whether any execute permission bit is set. Executables
// frequently ship their own icons, so they bypass the extension cache.
func hasExecBit(info os.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}
