package fileicon

import (
	"os"
	"path/filepath"
	"strings"
)

// cacheKeyFor decides whether the icon for path may be memoized and under
// which key. Directories, symlinks, executables, and extensions whose files
// carry their own icon can all have arbitrary per-path icons, so they are
// never cached; neither are paths with no extension, which have no stable
// key. Everything else is keyed by its extension exactly as written, dot
// included.
//
// The caller passes Lstat metadata so that symlinks are classified as
// symlinks rather than as their targets.
func cacheKeyFor(path string, info os.FileInfo) (string, bool) {
	if info.IsDir() || info.Mode()&os.ModeSymlink != 0 || hasExecBit(info) {
		return "", false
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	if hasOwnIcon(strings.ToLower(ext)) {
		return "", false
	}
	return ext, true
}
