package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/VoiceFeed/internal/app"
)

var ErrBackpressure = errors.New("backpressure")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// feedEvents streams controller feed events to websocket clients.
type feedEvents struct {
	ctl        *app.Controller
	pingPeriod time.Duration
}

func newFeedEvents(ctl *app.Controller, pingPeriod time.Duration) *feedEvents {
	if pingPeriod <= 0 {
		pingPeriod = 54 * time.Second
	}
	return &feedEvents{ctl: ctl, pingPeriod: pingPeriod}
}

type wsEventConn struct {
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

func (c *wsEventConn) TrySend(b []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- b:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsEventConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (fe *feedEvents) Handle(ctx context.Context, c *gin.Context) {
	sid := c.GetString(clientTokenKey)
	conn := &wsEventConn{send: make(chan []byte, 32)}

	// Subscribe before upgrading so no event is missed once the client
	// sees the handshake complete; early events wait in the buffer.
	hid := fe.ctl.Subscribe(func(ev app.FeedEvent) {
		b, err := json.Marshal(ev)
		if err != nil {
			log.Error().Err(err).Str("module", "adapters.ws").Msg("marshal feed event")
			return
		}
		if err := conn.TrySend(b); err != nil {
			log.Warn().Err(err).Str("module", "adapters.ws").Str("sid", sid).Msg("feed event dropped")
		}
	})

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		fe.ctl.Unsubscribe(hid)
		log.Error().Err(err).Str("module", "adapters.ws").Msg("ws upgrade")
		return
	}
	conn.mu.Lock()
	conn.conn = ws
	conn.mu.Unlock()
	log.Info().Str("module", "adapters.ws").Str("sid", sid).Msg("feed events subscriber connected")

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		fe.readPump(ctx, sid, ws)
	}()
	go func() {
		fe.writePump(ctx, conn)
		fe.ctl.Unsubscribe(hid)
		conn.Close()
		log.Info().Str("module", "adapters.ws").Str("sid", sid).Msg("feed events subscriber gone")
	}()
}

// readPump only drains control frames; clients do not send anything.
func (fe *feedEvents) readPump(ctx context.Context, sid string, ws *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if _, _, err := ws.ReadMessage(); err != nil {
			log.Debug().Err(err).Str("module", "adapters.ws").Str("sid", sid).Msg("readPump closing")
			return
		}
	}
}

func (fe *feedEvents) writePump(ctx context.Context, c *wsEventConn) {
	ticker := time.NewTicker(fe.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				log.Error().Err(err).Str("module", "adapters.ws").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "adapters.ws").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "adapters.ws").Msg("writePump write error")
				return
			}
		}
	}
}
