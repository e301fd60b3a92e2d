package fileicon

import (
	"testing"
)

// Validation happens before any platform code runs, so these hold on every
// build target, display or not.

func TestGetFileIconNullSize(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "doc.txt")

	for _, size := range []int{0, -3} {
		_, err := GetFileIcon(path, size)
		if KindOf(err) != KindNullIconSize {
			t.Errorf("size=%d: expected KindNullIconSize, got %v", size, err)
		}
	}
}

func TestGetFileIconMissingPath(t *testing.T) {
	for _, size := range []int{1, 16, 256} {
		_, err := GetFileIcon("/definitely/not/a/real/path.txt", size)
		if KindOf(err) != KindPathDoesNotExist {
			t.Errorf("size=%d: expected KindPathDoesNotExist, got %v", size, err)
		}
	}
}

func TestGetFileIconSizeCheckedFirst(t *testing.T) {
	// Both validations fail; the size check wins so that callers get a
	// consistent error for a given bug regardless of the path they pass.
	_, err := GetFileIcon("/definitely/not/a/real/path.txt", 0)
	if KindOf(err) != KindNullIconSize {
		t.Errorf("Expected KindNullIconSize, got %v", err)
	}
}
