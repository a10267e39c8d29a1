package introspect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// newWSServer starts a graphql-transport-ws server that answers the first
// subscribe with payload, or with an error message when payload is empty.
func newWSServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{Subprotocols: []string{Subprotocol}}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		if conn.Subprotocol() != Subprotocol {
			t.Errorf("expected subprotocol %q, got %q", Subprotocol, conn.Subprotocol())
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("expected authorization on handshake, got %q", got)
		}

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg wsMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Errorf("bad message: %v", err)
				return
			}

			switch msg.Type {
			case msgConnectionInit:
				var init map[string]string
				json.Unmarshal(msg.Payload, &init)
				if init["Authorization"] != "Bearer token" {
					t.Errorf("expected authorization in init payload, got %v", init)
				}
				write(t, conn, wsMessage{Type: msgPing})
				write(t, conn, wsMessage{Type: msgConnectionAck})
			case msgPong:
			case msgSubscribe:
				var req request
				json.Unmarshal(msg.Payload, &req)
				if req.OperationName != OperationName {
					t.Errorf("expected operation %q, got %q", OperationName, req.OperationName)
				}
				if msg.ID == "" {
					t.Error("expected subscription id")
				}
				if payload == "" {
					write(t, conn, wsMessage{ID: msg.ID, Type: msgError, Payload: json.RawMessage(`[{"message":"introspection disabled"}]`)})
					continue
				}
				write(t, conn, wsMessage{ID: "other", Type: msgNext, Payload: json.RawMessage(`{"data":null}`)})
				write(t, conn, wsMessage{ID: msg.ID, Type: msgNext, Payload: json.RawMessage(payload)})
				write(t, conn, wsMessage{ID: msg.ID, Type: msgComplete})
			}
		}
	}))
}

func write(t *testing.T, conn *websocket.Conn, msg wsMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Errorf("failed to write: %v", err)
	}
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestFetchWebsocket(t *testing.T) {
	server := newWSServer(t, response)
	defer server.Close()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer token")

	data, err := NewClient(testOptions()).Fetch(context.Background(), wsURL(server), headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != response {
		t.Errorf("expected %q, got %q", response, data)
	}
}

func TestFetchWebsocketError(t *testing.T) {
	server := newWSServer(t, "")
	defer server.Close()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer token")

	_, err := NewClient(testOptions()).Fetch(context.Background(), wsURL(server), headers)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "introspection disabled") {
		t.Errorf("expected server message in error, got %q", err.Error())
	}
}

func TestFetchWebsocketRejectedHandshake(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewClient(testOptions()).Fetch(context.Background(), wsURL(server), nil)
	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", statusErr.StatusCode)
	}
}
