package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/csexamtest/examtest-backend/internal/middleware"
	"github.com/csexamtest/examtest-backend/internal/service"
	ws "github.com/csexamtest/examtest-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// ActivityHandler streams live test attempt events to admins.
type ActivityHandler struct {
	activity *service.ActivityService
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activity *service.ActivityService, log zerolog.Logger, allowedOrigins []string) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
		log:      log.With().Str("component", "activity_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// Stream godoc
// WS /ws/admin/activity
// Subscribes before upgrading so a missing feed is still a plain HTTP 503.
func (h *ActivityHandler) Stream(c *gin.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := h.activity.Subscribe(ctx)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("admin_id", middleware.GetIdentity(c).ID).Logger()
	wsLog.Info().Msg("Admin connected to activity feed")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		if err := ws.DrainReads(conn); websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			wsLog.Warn().Err(err).Msg("Unexpected close")
		}
	}()

	if err := ws.WriteTyped(conn, ws.ReadyMessage{Event: ws.EventReady}); err != nil {
		return
	}

	ping := time.NewTicker(ws.PingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			wsLog.Debug().Msg("Connection closed")
			return
		case <-ping.C:
			if err := ws.WritePing(conn); err != nil {
				return
			}
		case payload, ok := <-events:
			if !ok {
				_ = ws.WriteError(conn, "activity feed ended")
				return
			}
			msg, err := ws.NewActivityMessage(payload)
			if err != nil {
				wsLog.Warn().Err(err).Msg("Dropping malformed activity payload")
				continue
			}
			if err := ws.WriteTyped(conn, msg); err != nil {
				return
			}
		}
	}
}
