package game

import (
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"
)

var errSessionClosed = errors.New("session closed")

// --- AnswerSource ---

type MockAnswerSource struct {
	mock.Mock
}

func (m *MockAnswerSource) Pick() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// --- Transport ---

type sentEvent struct {
	RoomID  string // empty for direct sends
	ConnID  string // empty for broadcasts
	Event   string
	Payload any
}

// fakeTransport records everything the coordinator emits, in order, so tests
// can assert both content and ordering of broadcasts.
type fakeTransport struct {
	mu     sync.Mutex
	Events []sentEvent
	Subs   map[string]string // connID -> roomID, deleted on unsubscribe
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{Subs: make(map[string]string)}
}

func (f *fakeTransport) Broadcast(roomID, event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Events = append(f.Events, sentEvent{RoomID: roomID, Event: event, Payload: payload})
}

func (f *fakeTransport) SendTo(connID, event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Events = append(f.Events, sentEvent{ConnID: connID, Event: event, Payload: payload})
}

func (f *fakeTransport) Subscribe(connID, roomID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Subs[connID] = roomID
}

func (f *fakeTransport) Unsubscribe(connID, roomID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Subs, connID)
}

func (f *fakeTransport) snapshot() []sentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentEvent(nil), f.Events...)
}

func (f *fakeTransport) eventNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.Events))
	for _, e := range f.Events {
		names = append(names, e.Event)
	}
	return names
}

func (f *fakeTransport) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Events = nil
}

// --- NetworkSession ---

// fakeSession captures writes; Read blocks until closed.
type fakeSession struct {
	mu       sync.Mutex
	Written  [][]byte
	Pings    int
	Closed   bool
	readChan chan []byte
}

func newFakeSession() *fakeSession {
	return &fakeSession{readChan: make(chan []byte)}
}

func (s *fakeSession) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Written = append(s.Written, append([]byte(nil), data...))
	return nil
}

func (s *fakeSession) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Pings++
	return nil
}

func (s *fakeSession) Read() ([]byte, error) {
	data, ok := <-s.readChan
	if !ok {
		return nil, errSessionClosed
	}
	return data, nil
}

func (s *fakeSession) Close(errCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
}

func (s *fakeSession) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Closed
}

func (s *fakeSession) written() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.Written...)
}
