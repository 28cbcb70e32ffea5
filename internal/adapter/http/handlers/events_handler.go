package handlers

import (
	"log"
	"net/http"
	"time"

	"depannel_dispatch/internal/adapter/notification"
	"depannel_dispatch/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 20 * time.Second
	wsWriteWait  = 10 * time.Second
	wsReadLimit  = 4 << 10
)

// EventsHandler streams notifications to managers and to the agent they
// concern over a websocket.
type EventsHandler struct {
	broker   notification.IBroker
	upgrader websocket.Upgrader
}

func NewEventsHandler(broker notification.IBroker) *EventsHandler {
	return &EventsHandler{
		broker:   broker,
		upgrader: websocket.Upgrader{CheckOrigin: func(_ *http.Request) bool { return true }},
	}
}

func audienceFor(p entities.Principal) string {
	if p.IsManager() {
		return entities.AudienceManagers
	}
	return entities.AgentAudience(p.UserID)
}

func (h *EventsHandler) Stream(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	if !p.IsManager() && !(p.IsAgent() && p.UserID != "") {
		writeError(c, errForbidden.WithDetails("unknown role"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[events][handler] upgrade failed user=%s err=%v", p.UserID, err)
		return
	}
	defer func() { _ = conn.Close() }()

	audience := audienceFor(p)
	ch := h.broker.Subscribe(audience)
	defer h.broker.Unsubscribe(audience, ch)
	log.Printf("[events][handler] subscribed user=%s audience=%s", p.UserID, audience)

	// the read loop only services control frames and detects disconnects
	done := make(chan struct{})
	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error { return conn.SetReadDeadline(time.Now().Add(wsPongWait)) })
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(n); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
