package fileicon

import (
	"errors"
	"os"

	"fileicon/internal/iconsys"
)

var errProviderClosed = errors.New("provider is closed")

// Provider memoizes icon lookups by file extension and keeps the platform
// resources needed for repeated lookups alive between calls (the Cocoa
// backend's reusable bitmap, the Windows backend's COM worker reference).
//
// The icon size and the converter are fixed at construction. The converter
// runs exactly once per cache miss; its result is stored and handed back
// as-is on every later hit, so T must be a value the caller treats as
// read-only (a fyne.Resource, an *image.RGBA nobody draws on, ...).
//
// Caching assumes the icon for an extension is stable for the process
// lifetime. A Provider is not safe for concurrent use; callers wanting
// parallelism need external locking or one Provider per goroutine.
type Provider[T any] struct {
	size    int
	convert func(Icon) T
	cache   map[string]T
	fetch   func(path string) (*iconsys.Icon, error)
	release func() error
	debug   func(format string, args ...interface{})
	closed  bool
}

// NewProvider creates a Provider that retrieves icons at the given square
// size and converts them with convert. Fails with KindNullIconSize when
// size < 1 and with KindFailed when the platform resources cannot be
// acquired.
func NewProvider[T any](size int, convert func(Icon) T) (*Provider[T], error) {
	const op = "NewProvider"
	if size < 1 {
		return nil, newSizeError(op)
	}
	if convert == nil {
		return nil, newPlatformError(op, "", KindFailed, errors.New("nil converter"))
	}
	sess, err := iconsys.NewSession(size)
	if err != nil {
		return nil, newPlatformError(op, "", KindFailed, err)
	}
	p := newProviderWithFetch(size, convert, sess.Fetch)
	p.release = sess.Close
	return p, nil
}

// newProviderWithFetch wires an explicit platform primitive. Tests use it to
// count calls without touching the OS.
func newProviderWithFetch[T any](size int, convert func(Icon) T, fetch func(string) (*iconsys.Icon, error)) *Provider[T] {
	return &Provider[T]{
		size:    size,
		convert: convert,
		cache:   make(map[string]T, 64),
		fetch:   fetch,
	}
}

// GetFileIcon retrieves the icon for path, from cache when the path is
// cacheable and already resolved, otherwise from the platform. Failed
// lookups are never cached: the next call for the same key retries the OS,
// so transient platform failures heal on their own.
func (p *Provider[T]) GetFileIcon(path string) (T, error) {
	const op = "Provider.GetFileIcon"
	var zero T
	if p.closed {
		return zero, newPlatformError(op, path, KindFailed, errProviderClosed)
	}
	info, err := os.Lstat(path)
	if err != nil {
		return zero, newPathError(op, path, err)
	}
	key, cacheable := cacheKeyFor(path, info)
	if !cacheable {
		p.debugf("Provider: calling through for %s", path)
		return p.lookup(op, path)
	}
	if v, ok := p.cache[key]; ok {
		return v, nil
	}
	v, err := p.lookup(op, path)
	if err != nil {
		return zero, err
	}
	p.cache[key] = v
	p.debugf("Provider: cached %q at %dpx", key, p.size)
	return v, nil
}

func (p *Provider[T]) lookup(op, path string) (T, error) {
	var zero T
	raw, err := p.fetch(path)
	if err != nil {
		return zero, newPlatformError(op, path, platformKind(err), err)
	}
	return p.convert(*fromRaw(raw)), nil
}

// Clear drops every cached entry. Platform resources stay alive.
func (p *Provider[T]) Clear() {
	clear(p.cache)
}

// Close releases the platform resources. The Provider is unusable
// afterwards; Close is idempotent.
func (p *Provider[T]) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.cache = nil
	if p.release != nil {
		return p.release()
	}
	return nil
}

// SetDebug installs a debug print function (log.Printf-shaped). Nil
// disables debug output.
func (p *Provider[T]) SetDebug(f func(format string, args ...interface{})) {
	p.debug = f
}

func (p *Provider[T]) debugf(format string, args ...interface{}) {
	if p.debug != nil {
		p.debug(format, args...)
	}
}
