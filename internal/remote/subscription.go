package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jotlabs/jot/internal/note"
)

// SnapshotType tags the wire message carrying a full collection replacement.
const SnapshotType = "SNAPSHOT"

const pingInterval = 30 * time.Second

// Envelope is the subscription wire message. Notes is the full collection,
// ordered by updatedAt descending.
type Envelope struct {
	Type  string      `json:"type"`
	Notes []note.Note `json:"notes"`
}

// Subscribe opens the snapshot feed. fn is invoked from a background
// goroutine for every pushed snapshot until Stop is called or the
// connection drops.
func (c *Client) Subscribe(ctx context.Context, fn SnapshotFunc) (Subscription, error) {
	wsURL, err := c.subscribeURL()
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open subscription: %w", err)
	}

	sub := &wsSubscription{
		conn: conn,
		done: make(chan struct{}),
		log:  c.log,
	}
	go sub.writePump()
	go sub.readPump(fn)

	return sub, nil
}

func (c *Client) subscribeURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + notesPath + "/subscribe"

	// The browser WebSocket API cannot set headers, so the service reads the
	// token from the query string; we match that contract.
	if c.token != "" {
		q := u.Query()
		q.Set("token", c.token)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

type wsSubscription struct {
	conn *websocket.Conn
	done chan struct{}
	once sync.Once
	log  *zap.SugaredLogger
}

// Stop releases the feed exactly once; further calls are no-ops.
func (s *wsSubscription) Stop() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

func (s *wsSubscription) readPump(fn SnapshotFunc) {
	defer s.Stop()

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
			default:
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.log.Errorf("subscription read failed: %v", err)
				}
			}
			return
		}

		var msg Envelope
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.log.Errorf("failed to decode subscription message: %v", err)
			continue
		}

		if msg.Type != SnapshotType {
			continue
		}

		notes := msg.Notes
		if notes == nil {
			notes = []note.Note{}
		}
		fn(notes)
	}
}

func (s *wsSubscription) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.Stop()
				return
			}
		}
	}
}
