package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHubBroadcastsPublishedEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- client

	hub.Publish(Event{Type: "request.created", RequestID: 7})

	select {
	case payload := <-client.Send:
		var evt Event
		if err := json.Unmarshal(payload, &evt); err != nil {
			t.Fatalf("bad event json: %v", err)
		}
		if evt.Type != "request.created" || evt.RequestID != 7 {
			t.Fatalf("event = %+v", evt)
		}
		if evt.ID == uuid.Nil {
			t.Fatal("event id not assigned")
		}
		if evt.At.IsZero() {
			t.Fatal("event timestamp not assigned")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}

	hub.unregister <- client
}

func TestPublishOnNilHubIsNoOp(t *testing.T) {
	var hub *Hub
	// Must not panic or block when no hub is wired
	hub.Publish(Event{Type: "request.approved", RequestID: 1})
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub() // Run() deliberately not started

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(Event{Type: "request.created", RequestID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked with no consumer")
	}
}
