//go:build windows

package fileicon

import "os"

// Windows has no executable permission bit; executables are recognized by
// extension below.
func hasExecBit(info os.FileInfo) bool { return false }

// hasOwnIcon reports extensions whose files embed or resolve to a unique
// icon. .exe: embedded app icon; .lnk: resolves to the target's icon;
// .ico: the file itself is an icon.
func hasOwnIcon(ext string) bool {
	switch ext {
	case ".exe", ".lnk", ".ico":
		return true
	default:
		return false
	}
}
