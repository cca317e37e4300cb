// Package realtime streams CRM change notifications from Redis pub/sub to dashboard
// websockets.
package realtime

import (
	"context"
	"net/http"
	"time"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Subscriber is satisfied by the Redis client.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan string, error)
}

type Handler struct {
	subscriber Subscriber
	channel    string
	upgrader   websocket.Upgrader
	logger     *observability.Logger
}

// New builds the websocket handler. A nil subscriber means Redis is disabled and every
// request is answered with 503.
func New(subscriber Subscriber, channel string, allowedOrigins []string, logger *observability.Logger) Handler {
	return Handler{
		subscriber: subscriber,
		channel:    channel,
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin(allowedOrigins),
		},
		logger: logger,
	}
}

// checkOrigin accepts requests without an Origin header (non-browser clients) and
// browsers served from one of the allowed origins. An empty list allows everything.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}

// HandleRealtime upgrades the request and forwards every message published on the
// realtime channel until either side goes away.
func (h *Handler) HandleRealtime(c *gin.Context) {
	if h.subscriber == nil {
		apierrors.RespondWithError(c, apierrors.ServiceUnavailable(apierrors.CodeRealtimeDisabled, "Realtime updates are disabled", nil))
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer cancel()
	ctx = observability.WithFields(ctx, observability.Field{Key: "channel", Value: h.channel})

	messages, err := h.subscriber.Subscribe(ctx, h.channel)
	if err != nil {
		h.logger.Error(ctx, "failed to subscribe to realtime channel", err)
		apierrors.RespondWithError(c, apierrors.ServiceUnavailable(apierrors.CodeRealtimeDisabled, "Realtime updates are unavailable", err))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn(ctx, "websocket upgrade failed: "+err.Error())
		return
	}
	defer conn.Close()

	h.logger.Info(ctx, "realtime client connected")
	go h.readLoop(conn, cancel)
	h.writeLoop(ctx, conn, messages)
	h.logger.Info(ctx, "realtime client disconnected")
}

// readLoop discards client frames and cancels the subscription once the client is gone.
func (h *Handler) readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeLoop(ctx context.Context, conn *websocket.Conn, messages <-chan string) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case msg, ok := <-messages:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "subscription ended"), time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				h.logger.Warn(ctx, "failed to write realtime message: "+err.Error())
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
