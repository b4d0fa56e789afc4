package core

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

type HandlerID string

type handler[T any] struct {
	id HandlerID
	fn func(T)
}

// Emitter keeps an ordered list of handlers per event kind.
// Emit calls handlers synchronously on the caller's goroutine, in the
// order they were added. The list is snapshotted before calling, so
// handlers may call On/Off on the same emitter.
type Emitter[E comparable, T any] struct {
	mu       sync.RWMutex
	handlers map[E][]handler[T]
}

func NewEmitter[E comparable, T any]() *Emitter[E, T] {
	return &Emitter[E, T]{handlers: make(map[E][]handler[T])}
}

func (e *Emitter[E, T]) On(event E, fn func(T)) HandlerID {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[E][]handler[T])
	}
	id := HandlerID(uuid.NewString())
	e.handlers[event] = append(e.handlers[event], handler[T]{id: id, fn: fn})
	return id
}

// Off removes a handler. It reports whether the handler was registered.
func (e *Emitter[E, T]) Off(event E, id HandlerID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	hs := e.handlers[event]
	originalLen := len(hs)
	hs = slices.DeleteFunc(hs, func(h handler[T]) bool {
		return h.id == id
	})
	if len(hs) == 0 {
		delete(e.handlers, event)
	} else {
		e.handlers[event] = hs
	}
	return len(hs) < originalLen
}

func (e *Emitter[E, T]) Count(event E) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[event])
}

// Emit returns the number of handlers called.
func (e *Emitter[E, T]) Emit(event E, payload T) int {
	e.mu.RLock()
	hs := slices.Clone(e.handlers[event])
	e.mu.RUnlock()

	for _, h := range hs {
		h.fn(payload)
	}
	return len(hs)
}
