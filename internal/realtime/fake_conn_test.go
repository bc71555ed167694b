package realtime

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

var errConnClosed = errors.New("use of closed connection")

// fakeConn — соединение в памяти: входящие сообщения через канал, исходящие копятся.
type fakeConn struct {
	incoming chan []byte
	closed   chan struct{}
	once     sync.Once

	mu     sync.Mutex
	writes []string
}

func newFakeConn() *fakeConn {
	return &fakeConn{incoming: make(chan []byte, 16), closed: make(chan struct{})}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case msg := <-f.incoming:
		return websocket.TextMessage, msg, nil
	case <-f.closed:
		return 0, nil, errConnClosed
	}
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	select {
	case <-f.closed:
		return errConnClosed
	default:
	}
	f.mu.Lock()
	f.writes = append(f.writes, string(data))
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.once.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) Writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

// fakeDialer — выдаёт заранее заданные соединения/ошибки по очереди;
// когда очередь пуста, возвращает последнюю ошибку (или блокируется до ctx).
type fakeDialer struct {
	mu      sync.Mutex
	results []dialResult
	calls   atomic.Int32
}

type dialResult struct {
	conn conn
	err  error
}

func (d *fakeDialer) push(c conn, err error) {
	d.mu.Lock()
	d.results = append(d.results, dialResult{conn: c, err: err})
	d.mu.Unlock()
}

func (d *fakeDialer) DialContext(ctx context.Context, _ string, _ http.Header) (conn, error) {
	d.calls.Add(1)

	d.mu.Lock()
	if len(d.results) == 0 {
		d.mu.Unlock()
		<-ctx.Done()
		return nil, ctx.Err()
	}
	r := d.results[0]
	if len(d.results) > 1 {
		d.results = d.results[1:]
	} else if r.conn != nil {
		d.results = nil
	}
	d.mu.Unlock()
	return r.conn, r.err
}

// recordingHandler — складывает сообщения в канал.
type recordingHandler struct {
	got chan string
	err error
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{got: make(chan string, 16)}
}

func (h *recordingHandler) HandleMessage(_ context.Context, raw []byte) error {
	h.got <- string(raw)
	return h.err
}

// droppingConn — сервер принимает сокет и authenticate, но сразу рвёт соединение.
type droppingConn struct{ *fakeConn }

func (droppingConn) ReadMessage() (int, []byte, error) { return 0, nil, errConnClosed }

// dialFunc — dialer из функции.
type dialFunc func(ctx context.Context) (conn, error)

func (f dialFunc) DialContext(ctx context.Context, _ string, _ http.Header) (conn, error) {
	return f(ctx)
}
