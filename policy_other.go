//go:build !windows && !linux

package fileicon

// No extension-exempt formats here. On macOS, app bundles are directories
// and are already excluded by the directory rule.
func hasOwnIcon(ext string) bool { return false }
