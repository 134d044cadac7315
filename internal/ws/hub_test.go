package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"artistry/config"
	"artistry/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	c1 := &Client{Send: make(chan []byte, 4)}
	c2 := &Client{Send: make(chan []byte, 4)}
	hub.Register(c1)
	hub.Register(c2)
	if hub.ClientCount() != 2 {
		t.Fatalf("count = %d, want 2", hub.ClientCount())
	}

	hub.Broadcast(EventInquiryCreated, map[string]string{"subject": "hello"})

	for _, c := range []*Client{c1, c2} {
		select {
		case msg := <-c.Send:
			var ev Event
			if err := json.Unmarshal(msg, &ev); err != nil {
				t.Fatalf("payload: %v", err)
			}
			if ev.Type != EventInquiryCreated {
				t.Errorf("type = %q", ev.Type)
			}
		default:
			t.Fatal("client did not receive broadcast")
		}
	}

	c1.Close()
	if hub.ClientCount() != 1 {
		t.Fatalf("count after close = %d, want 1", hub.ClientCount())
	}
	// Closing twice is harmless.
	c1.Close()
}

func TestHubDropsWhenClientBufferFull(t *testing.T) {
	hub := NewHub()
	c := &Client{Send: make(chan []byte, 1)}
	hub.Register(c)

	hub.Broadcast(EventOrderCreated, 1)
	hub.Broadcast(EventOrderCreated, 2) // dropped, not blocked

	if len(c.Send) != 1 {
		t.Fatalf("buffered = %d, want 1", len(c.Send))
	}
}

func TestUpgradeAdminWS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.AdminConfig{
		TokenSecret: "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "cakes-artistry",
	}
	hub := NewHub()
	engine := gin.New()
	engine.GET("/ws/admin", UpgradeAdminWS(cfg, hub))
	srv := httptest.NewServer(engine)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/admin"

	// Without a token the upgrade is refused.
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("dial without token should fail")
	}
	if resp != nil && resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	token, err := auth.GenerateAdminToken(cfg)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+token, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The connection registers asynchronously with respect to the dial.
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatalf("client not registered")
	}

	hub.Broadcast(EventOrderCreated, map[string]string{"name": "Grace"})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev Event
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Type != EventOrderCreated {
		t.Errorf("type = %q, want %q", ev.Type, EventOrderCreated)
	}
}
