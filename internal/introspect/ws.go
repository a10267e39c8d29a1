package introspect

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Subprotocol is the websocket subprotocol spoken to ws endpoints.
const Subprotocol = "graphql-transport-ws"

// graphql-transport-ws message types.
const (
	msgConnectionInit = "connection_init"
	msgConnectionAck  = "connection_ack"
	msgPing           = "ping"
	msgPong           = "pong"
	msgSubscribe      = "subscribe"
	msgNext           = "next"
	msgError          = "error"
	msgComplete       = "complete"
)

type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Headers the websocket handshake sets itself.
var reservedHeaders = map[string]bool{
	"Upgrade":                  true,
	"Connection":               true,
	"Sec-Websocket-Key":        true,
	"Sec-Websocket-Version":    true,
	"Sec-Websocket-Extensions": true,
	"Sec-Websocket-Protocol":   true,
}

type wsDialer struct {
	dialer websocket.Dialer
}

func newWSDialer(opts Options) *wsDialer {
	return &wsDialer{dialer: websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: opts.Timeout,
		Subprotocols:     []string{Subprotocol},
	}}
}

func (d *wsDialer) fetch(ctx context.Context, endpoint string, headers http.Header) ([]byte, error) {
	handshake := make(http.Header, len(headers))
	initPayload := make(map[string]string, len(headers))
	for name, values := range headers {
		if reservedHeaders[http.CanonicalHeaderKey(name)] {
			continue
		}
		for _, v := range values {
			handshake.Add(name, v)
		}
		initPayload[name] = strings.Join(values, ", ")
	}

	conn, resp, err := d.dialer.DialContext(ctx, endpoint, handshake)
	if err != nil {
		if resp != nil && resp.StatusCode >= 300 {
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	// Unblock reads when ctx ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	s := &wsSession{conn: conn}
	data, err := s.run(initPayload)
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return data, err
}

type wsSession struct {
	conn *websocket.Conn
}

func (s *wsSession) run(initPayload map[string]string) ([]byte, error) {
	if err := s.send("", msgConnectionInit, initPayload); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	acked := false
	var result json.RawMessage

	for {
		msg, err := s.read()
		if err != nil {
			return nil, err
		}

		switch msg.Type {
		case msgConnectionAck:
			if acked {
				continue
			}
			acked = true
			if err := s.send(id, msgSubscribe, introspectionRequest()); err != nil {
				return nil, err
			}
		case msgPing:
			if err := s.send("", msgPong, nil); err != nil {
				return nil, err
			}
		case msgNext:
			if msg.ID == id {
				result = msg.Payload
			}
		case msgError:
			if msg.ID == id {
				return nil, fmt.Errorf("introspection rejected: %s", msg.Payload)
			}
		case msgComplete:
			if msg.ID != id {
				continue
			}
			if result == nil {
				return nil, errors.New("subscription completed without a result")
			}
			s.close()
			return result, nil
		}
	}
}

func (s *wsSession) send(id, typ string, payload any) error {
	msg := wsMessage{ID: id, Type: typ}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", typ, err)
		}
		msg.Payload = raw
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", typ, err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to send %s: %w", typ, err)
	}
	return nil
}

func (s *wsSession) read() (*wsMessage, error) {
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	var msg wsMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}
	return &msg, nil
}

func (s *wsSession) close() {
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
