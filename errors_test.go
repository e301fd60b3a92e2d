package fileicon

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	testCases := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindPathDoesNotExist, "path does not exist"},
		{KindNullIconSize, "null icon size"},
		{KindUnsupportedFormat, "unsupported pixel format"},
		{KindFailed, "failed"},
		{ErrorKind(99), "unknown"},
	}

	for _, tc := range testCases {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("Expected '%s', got '%s'", tc.expected, got)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	withPath := &Error{Kind: KindPathDoesNotExist, Operation: "GetFileIcon", Path: "/tmp/gone.txt"}
	if msg := withPath.Error(); !strings.Contains(msg, "/tmp/gone.txt") || !strings.Contains(msg, "GetFileIcon") {
		t.Errorf("Expected message with path and operation, got '%s'", msg)
	}

	withoutPath := &Error{Kind: KindNullIconSize, Operation: "NewProvider"}
	if msg := withoutPath.Error(); strings.Contains(msg, "[") {
		t.Errorf("Expected no path segment, got '%s'", msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("shell said no")
	err := newPlatformError("GetFileIcon", "/tmp/x.txt", KindFailed, cause)
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
}

func TestKindOf(t *testing.T) {
	if kind := KindOf(newSizeError("NewProvider")); kind != KindNullIconSize {
		t.Errorf("Expected KindNullIconSize, got %v", kind)
	}
	if kind := KindOf(errors.New("some other error")); kind != KindFailed {
		t.Errorf("Expected KindFailed for foreign errors, got %v", kind)
	}
}
