package pulse

import "log/slog"

type Releaser interface {
	Release()
}

type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}

// ReleaseFunc adapts a plain function to the Releaser interface.
type ReleaseFunc func()

func (f ReleaseFunc) Release() {
	f()
}

// Releasers owns a stack of resources. Release frees them in
// reverse order of registration.
type Releasers struct {
	stack []namedReleaser
}

type namedReleaser struct {
	name     string
	releaser Releaser
}

func (r *Releasers) Push(name string, releaser Releaser) {
	r.stack = append(r.stack, namedReleaser{name: name, releaser: releaser})
}

func (r *Releasers) Len() int {
	return len(r.stack)
}

func (r *Releasers) Release() {
	for idx := len(r.stack) - 1; idx >= 0; idx-- {
		entry := r.stack[idx]

		slog.Debug("Release resource", slog.String("name", entry.name))
		entry.releaser.Release()
	}

	r.stack = nil
}
