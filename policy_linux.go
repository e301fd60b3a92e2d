//go:build linux

package fileicon

// hasOwnIcon reports extensions whose files carry an arbitrary icon.
// .desktop launchers declare their own Icon= entry.
func hasOwnIcon(ext string) bool {
	return ext == ".desktop"
}
