package nostr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const (
	botSecret    = "0000000000000000000000000000000000000000000000000000000000000001"
	playerSecret = "0000000000000000000000000000000000000000000000000000000000000002"
)

// testRelay is a minimal in-process relay: it acks EVENTs, answers REQs from
// what it has stored, then sends EOSE.
type testRelay struct {
	srv *httptest.Server

	mu     sync.Mutex
	events []*Event
	reject bool
	mute   bool
	closes []string
}

func newTestRelay(t *testing.T) *testRelay {
	t.Helper()

	r := &testRelay{}
	up := websocket.Upgrader{}
	r.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := up.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			r.handle(conn, data)
		}
	}))
	t.Cleanup(r.srv.Close)

	return r
}

func (r *testRelay) url() string {
	return "ws" + strings.TrimPrefix(r.srv.URL, "http")
}

func (r *testRelay) store(evs ...*Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evs...)
}

func (r *testRelay) stored() []*Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Event(nil), r.events...)
}

func (r *testRelay) closed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.closes...)
}

func (r *testRelay) handle(conn *websocket.Conn, data []byte) {
	var frame []json.RawMessage
	if json.Unmarshal(data, &frame) != nil || len(frame) < 2 {
		return
	}
	var label string
	_ = json.Unmarshal(frame[0], &label)

	r.mu.Lock()
	mute, reject := r.mute, r.reject
	r.mu.Unlock()
	if mute {
		return
	}

	switch label {
	case "EVENT":
		var ev Event
		_ = json.Unmarshal(frame[1], &ev)
		if !reject {
			r.store(&ev)
		}
		_ = conn.WriteJSON([]interface{}{"NOTICE", "hello"})
		_ = conn.WriteJSON([]interface{}{"OK", ev.ID, !reject, "blocked: test"})
	case "REQ":
		var (
			sub string
			f   Filter
		)
		_ = json.Unmarshal(frame[1], &sub)
		_ = json.Unmarshal(frame[2], &f)
		for _, ev := range r.match(f) {
			_ = conn.WriteJSON([]interface{}{"EVENT", sub, ev})
		}
		_ = conn.WriteJSON([]interface{}{"EOSE", sub})
	case "CLOSE":
		var sub string
		_ = json.Unmarshal(frame[1], &sub)
		r.mu.Lock()
		r.closes = append(r.closes, sub)
		r.mu.Unlock()
	}
}

func (r *testRelay) match(f Filter) []*Event {
	var out []*Event
	for _, ev := range r.stored() {
		if ev.CreatedAt < f.Since {
			continue
		}
		for _, id := range f.E {
			if ev.Refers(id) {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

func deadRelayURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()
	return url
}

func mustKeys(t *testing.T, secret string) *Keys {
	t.Helper()
	k, err := ParseKeys(secret)
	require.NoError(t, err)
	return k
}

func signedReply(t *testing.T, k *Keys, to, content string, at int64) *Event {
	t.Helper()
	ev := &Event{CreatedAt: at, Kind: KindTextNote, Tags: []Tag{{"e", to}}, Content: content}
	require.NoError(t, ev.Sign(k))
	return ev
}
