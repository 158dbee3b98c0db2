package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	sio "github.com/zishang520/socket.io-client-go/socket"
)

// socketIOConn adapts the zishang520 socket.io client to Conn. The service
// only speaks websocket, so polling is never offered.
type socketIOConn struct {
	url string

	mu      sync.Mutex
	io      *sio.Socket
	pending []func(*sio.Socket)

	done     chan struct{}
	doneOnce sync.Once
}

// DialSocketIO is the production Dialer.
func DialSocketIO(url string) Conn {
	return &socketIOConn{url: url, done: make(chan struct{})}
}

func (c *socketIOConn) Connect(ctx context.Context) error {
	opts := sio.DefaultOptions()
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := sio.NewManager(c.url, opts)

	connected := make(chan error, 1)

	c.mu.Lock()
	c.io = manager.Socket("/", opts)
	c.io.On("connect", func(...any) {
		select {
		case connected <- nil:
		default:
		}
	})
	c.io.On("connect_error", func(args ...any) {
		select {
		case connected <- fmt.Errorf("socket.io connect error: %v", args):
		default:
		}
	})
	c.io.On("disconnect", func(...any) {
		c.markDone()
	})
	// Handlers registered before Connect
	for _, register := range c.pending {
		register(c.io)
	}
	c.pending = nil
	c.mu.Unlock()

	select {
	case err := <-connected:
		if err != nil {
			c.Disconnect()
			return err
		}
		return nil
	case <-ctx.Done():
		c.Disconnect()
		return ctx.Err()
	}
}

func (c *socketIOConn) Emit(event string, payload interface{}) error {
	c.mu.Lock()
	io := c.io
	c.mu.Unlock()
	if io == nil {
		return fmt.Errorf("emit %q: connection not established", event)
	}
	return io.Emit(event, payload)
}

func (c *socketIOConn) On(event string, h Handler) {
	c.register(func(io *sio.Socket) {
		io.On(types.EventName(event), func(args ...any) {
			h(args...)
		})
	})
}

func (c *socketIOConn) OnAny(h CatchAllHandler) {
	c.register(func(io *sio.Socket) {
		io.OnAny(func(args ...any) {
			if len(args) == 0 {
				return
			}
			event, ok := args[0].(string)
			if !ok {
				return
			}
			h(event, args[1:]...)
		})
	})
}

// register applies f now if the socket exists, or defers it to Connect.
func (c *socketIOConn) register(f func(*sio.Socket)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.io != nil {
		f(c.io)
		return
	}
	c.pending = append(c.pending, f)
}

func (c *socketIOConn) Wait() {
	<-c.done
}

func (c *socketIOConn) Disconnect() {
	c.mu.Lock()
	io := c.io
	c.mu.Unlock()
	if io != nil {
		io.Disconnect()
	}
	// Unblock Wait even if the remote never acknowledges the close.
	c.markDone()
}

func (c *socketIOConn) markDone() {
	c.doneOnce.Do(func() { close(c.done) })
}
