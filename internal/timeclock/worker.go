package timeclock

import "errors"

// ErrMissingWorkerIdentity is returned when an entry names neither a
// registered worker nor a non-blank guest name.
var ErrMissingWorkerIdentity = errors.New("entry needs a registered worker or a guest name")

// Worker identifies who performed the logged work. It is one of two variants:
// a registered worker with a stable ID, or a guest known only by a free-text
// name. The variants are fixed at construction so callers cannot produce a
// half-filled identity.
type Worker struct {
	id   string
	name string
}

// RegisteredWorker returns the identity of a worker with a stable account ID.
func RegisteredWorker(id, name string) Worker {
	return Worker{id: id, name: name}
}

// GuestWorker returns the identity of an unregistered worker. The name is the
// only handle the ledger has on such entries; guests never contribute to
// per-worker totals.
func GuestWorker(name string) Worker {
	return Worker{name: name}
}

// Registered reports whether the worker has a stable ID.
func (w Worker) Registered() bool { return w.id != "" }

// ID returns the worker ID and whether one is present.
func (w Worker) ID() (string, bool) { return w.id, w.id != "" }

// Name returns the display name.
func (w Worker) Name() string { return w.name }
