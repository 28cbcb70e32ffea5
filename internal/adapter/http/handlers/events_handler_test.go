package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"depannel_dispatch/internal/adapter/notification"
	"depannel_dispatch/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestEventsHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	broker := notification.NewBroker()
	h := NewEventsHandler(broker)

	r := gin.New()
	r.GET("/v1/events/manager", asPrincipal(manager), h.Stream)
	r.GET("/v1/events/agent", asPrincipal(agent7), h.Stream)
	srv := httptest.NewServer(r)
	defer srv.Close()

	dial := func(path string) *websocket.Conn {
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
		conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusSwitchingProtocols {
			t.Fatalf("expected 101, got %d", resp.StatusCode)
		}
		return conn
	}

	t.Run("agent receives own notifications only", func(t *testing.T) {
		conn := dial("/v1/events/agent")
		defer conn.Close()
		audience := entities.AgentAudience("7")
		waitFor(t, func() bool { return broker.Subscribers(audience) == 1 })

		_ = broker.Publish(context.Background(), entities.Notification{Type: entities.NotificationPendingWork, Audience: entities.AgentAudience("9"), InterventionID: "2"})
		_ = broker.Publish(context.Background(), entities.Notification{Type: entities.NotificationPendingWork, Audience: audience, InterventionID: "1", Status: entities.StatusAssigned})

		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var got entities.Notification
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("read: %v", err)
		}
		if got.InterventionID != "1" || got.Status != entities.StatusAssigned {
			t.Fatalf("unexpected notification %+v", got)
		}
	})

	t.Run("manager subscription released on close", func(t *testing.T) {
		conn := dial("/v1/events/manager")
		waitFor(t, func() bool { return broker.Subscribers(entities.AudienceManagers) == 1 })

		_ = conn.Close()
		waitFor(t, func() bool { return broker.Subscribers(entities.AudienceManagers) == 0 })
	})

	t.Run("plain request is rejected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/events/agent")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})
}
