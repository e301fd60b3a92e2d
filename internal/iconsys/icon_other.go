//go:build !windows && !(linux && cgo) && !(darwin && cgo)

package iconsys

// Unsupported platforms: every lookup fails, callers fall back to their own
// default icons.

func FetchIcon(path string, size int) (*Icon, error) {
	return nil, ErrUnavailable
}

type Session struct{}

func NewSession(size int) (*Session, error) {
	return nil, ErrUnavailable
}

func (s *Session) Fetch(path string) (*Icon, error) {
	return nil, ErrUnavailable
}

func (s *Session) Close() error { return nil }
