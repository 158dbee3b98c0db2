package skribbl

import (
	"context"
	"io"
	"log"
	"sync"

	"skribbl/services/transport"
)

// fakeConn is an in-memory transport.Conn. Tests script the remote side
// with onEmit and fire.
type fakeConn struct {
	mu       sync.Mutex
	handlers map[string][]transport.Handler
	catchAll []transport.CatchAllHandler
	emitted  []fakeEmit
	onEmit   func(event string, payload interface{})

	connectErr error
	done       chan struct{}
	doneOnce   sync.Once
}

type fakeEmit struct {
	event   string
	payload interface{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		handlers: make(map[string][]transport.Handler),
		done:     make(chan struct{}),
	}
}

func (f *fakeConn) Connect(ctx context.Context) error {
	return f.connectErr
}

func (f *fakeConn) Emit(event string, payload interface{}) error {
	f.mu.Lock()
	f.emitted = append(f.emitted, fakeEmit{event: event, payload: payload})
	onEmit := f.onEmit
	f.mu.Unlock()
	if onEmit != nil {
		onEmit(event, payload)
	}
	return nil
}

func (f *fakeConn) On(event string, h transport.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[event] = append(f.handlers[event], h)
}

func (f *fakeConn) OnAny(h transport.CatchAllHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catchAll = append(f.catchAll, h)
}

func (f *fakeConn) Wait() {
	<-f.done
}

func (f *fakeConn) Disconnect() {
	f.doneOnce.Do(func() { close(f.done) })
}

// fire delivers an inbound event the way the transport would.
func (f *fakeConn) fire(event string, args ...interface{}) {
	f.mu.Lock()
	handlers := append([]transport.Handler(nil), f.handlers[event]...)
	catchAll := append([]transport.CatchAllHandler(nil), f.catchAll...)
	f.mu.Unlock()
	for _, h := range handlers {
		h(args...)
	}
	for _, h := range catchAll {
		h(event, args...)
	}
}

func (f *fakeConn) closed() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *fakeConn) emittedEvents() []fakeEmit {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeEmit(nil), f.emitted...)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
