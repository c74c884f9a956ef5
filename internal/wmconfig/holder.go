package wmconfig

import (
	"context"
	"sync"
	"sync/atomic"
)

// Holder publishes the current Runtime to concurrent readers. Reload
// compiles a new Runtime and swaps it in; a published Runtime is never
// modified.
type Holder struct {
	opts Options

	// mu serializes reloads. Readers never take it.
	mu  sync.Mutex
	cur atomic.Pointer[Runtime]
}

// NewHolder compiles the initial Runtime with opts.
func NewHolder(ctx context.Context, opts Options) (*Holder, error) {
	rt, err := Compile(ctx, opts)
	if err != nil {
		return nil, err
	}
	h := &Holder{opts: opts}
	h.cur.Store(rt)
	return h, nil
}

// Runtime returns the current Runtime.
func (h *Holder) Runtime() *Runtime {
	return h.cur.Load()
}

// Reload recompiles the configuration. On failure the current Runtime
// stays published and the error is returned.
func (h *Holder) Reload(ctx context.Context) (*Runtime, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rt, err := Compile(ctx, h.opts)
	if err != nil {
		return nil, err
	}
	h.cur.Store(rt)
	return rt, nil
}
