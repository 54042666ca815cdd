package nostr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/bloops-games/wordday/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	ErrRejected = fmt.Errorf("relay rejected event")
	ErrClosed   = fmt.Errorf("relay closed subscription")
)

// Filter is a NIP-01 REQ filter, only the fields used here.
type Filter struct {
	Kinds []int    `json:"kinds,omitempty"`
	E     []string `json:"#e,omitempty"`
	Since int64    `json:"since,omitempty"`
}

// Relay is a single websocket connection to a relay. Not safe for concurrent use.
type Relay struct {
	url  string
	conn *websocket.Conn
}

func Dial(ctx context.Context, url string) (*Relay, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	return &Relay{url: url, conn: conn}, nil
}

func (r *Relay) Close() error {
	_ = r.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	return r.conn.Close()
}

// Publish sends the event and waits for the relay's OK until the deadline.
func (r *Relay) Publish(ctx context.Context, ev *Event, deadline time.Time) error {
	stop := r.closeOnDone(ctx)
	defer stop()

	if err := r.send("EVENT", ev); err != nil {
		return err
	}

	if err := r.conn.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("set read deadline: %w", err)
	}

	for {
		label, frame, err := r.read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("await ok: %w", err)
		}

		switch label {
		case "OK":
			var (
				id       string
				accepted bool
				msg      string
			)
			if len(frame) < 3 {
				continue
			}
			if json.Unmarshal(frame[1], &id) != nil || id != ev.ID {
				continue
			}
			if err := json.Unmarshal(frame[2], &accepted); err != nil {
				return fmt.Errorf("decode ok: %w", err)
			}
			if len(frame) > 3 {
				_ = json.Unmarshal(frame[3], &msg)
			}
			if !accepted {
				return fmt.Errorf("%w: %s", ErrRejected, msg)
			}
			return nil
		case "NOTICE":
			r.notice(ctx, frame)
		}
	}
}

// Query subscribes with the filter and collects matching events until the
// deadline passes or ctx is done, then closes the subscription. Events
// collected before the deadline are returned even when the relay never sent EOSE.
func (r *Relay) Query(ctx context.Context, filter Filter, deadline time.Time) ([]*Event, error) {
	stop := r.closeOnDone(ctx)
	defer stop()

	subID := uuid.New().String()
	if err := r.send("REQ", subID, filter); err != nil {
		return nil, err
	}

	if err := r.conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}

	var events []*Event
	for {
		label, frame, err := r.read()
		if err != nil {
			if ctx.Err() != nil {
				return events, nil
			}
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				break
			}
			return nil, fmt.Errorf("read subscription: %w", err)
		}

		switch label {
		case "EVENT":
			if len(frame) < 3 || !sameSub(frame[1], subID) {
				continue
			}
			var ev Event
			if err := json.Unmarshal(frame[2], &ev); err != nil {
				logging.FromContext(ctx).Named("nostr.Query").Warnf("relay %s: decode event: %v", r.url, err)
				continue
			}
			events = append(events, &ev)
		case "CLOSED":
			if len(frame) >= 2 && sameSub(frame[1], subID) {
				var msg string
				if len(frame) > 2 {
					_ = json.Unmarshal(frame[2], &msg)
				}
				return nil, fmt.Errorf("%w: %s", ErrClosed, msg)
			}
		case "NOTICE":
			r.notice(ctx, frame)
		}
	}

	// the connection is unusable after a read timeout; CLOSE is best-effort
	_ = r.conn.SetWriteDeadline(time.Now().Add(time.Second))
	_ = r.send("CLOSE", subID)

	return events, nil
}

func (r *Relay) send(label string, args ...interface{}) error {
	msg := append([]interface{}{label}, args...)
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", label, err)
	}
	if err := r.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return fmt.Errorf("write %s: %w", label, err)
	}
	return nil
}

func (r *Relay) read() (string, []json.RawMessage, error) {
	for {
		_, data, err := r.conn.ReadMessage()
		if err != nil {
			return "", nil, err
		}

		var frame []json.RawMessage
		if err := json.Unmarshal(data, &frame); err != nil || len(frame) == 0 {
			continue
		}

		var label string
		if err := json.Unmarshal(frame[0], &label); err != nil {
			continue
		}

		return label, frame, nil
	}
}

func (r *Relay) notice(ctx context.Context, frame []json.RawMessage) {
	var msg string
	if len(frame) > 1 {
		_ = json.Unmarshal(frame[1], &msg)
	}
	logging.FromContext(ctx).Named("nostr.Relay").Infof("relay %s notice: %s", r.url, msg)
}

// closeOnDone unblocks a pending read when ctx is cancelled.
func (r *Relay) closeOnDone(ctx context.Context) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = r.conn.Close()
		case <-done:
		}
	}()
	return func() { close(done) }
}

func sameSub(raw json.RawMessage, subID string) bool {
	var got string
	return json.Unmarshal(raw, &got) == nil && got == subID
}
