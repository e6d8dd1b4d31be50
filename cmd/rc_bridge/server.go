package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/w1xm/rc_bridge/channel"
	"github.com/w1xm/rc_bridge/session"
	"github.com/w1xm/rc_bridge/surface"
)

type Server struct {
	loop *session.Loop

	// attached is set while an operator socket is open.
	mu       sync.Mutex
	attached bool

	statusMu sync.RWMutex
	status   session.Status

	// changed is closed and replaced whenever status changes.
	changed chan struct{}
}

func NewServer() *Server {
	return &Server{changed: make(chan struct{})}
}

func newRouter(s *Server, staticDir string) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/api/status", http.HandlerFunc(s.StatusHandler)).Methods(http.MethodGet)
	r.Handle("/api/ws", http.HandlerFunc(s.StatusSocketHandler))
	if staticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}
	return r
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) currentStatus() (session.Status, chan struct{}) {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status, s.changed
}

func (s *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	status, _ := s.currentStatus()
	w.Header().Set("Content-Type", "application/json")
	data, err := json.Marshal(status)
	if err != nil {
		log.Print(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(data)
}

// Message is sent by the operator page.
type Message struct {
	Type    string `json:"type"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Channel int    `json:"channel"`
	Value   int    `json:"value"`
}

func (m Message) Event() (session.Event, error) {
	at := surface.Point{X: m.X, Y: m.Y}
	switch m.Type {
	case "press":
		return session.Event{Kind: session.PointerDown, At: at}, nil
	case "move":
		return session.Event{Kind: session.PointerMove, At: at}, nil
	case "release":
		return session.Event{Kind: session.PointerUp, At: at}, nil
	case "reset":
		return session.Event{Kind: session.ResetPressed}, nil
	case "slider":
		return session.Event{Kind: session.SliderMoved, Channel: channel.Channel(m.Channel), Value: m.Value}, nil
	case "quit":
		return session.Event{Kind: session.Quit}, nil
	}
	return session.Event{}, fmt.Errorf("unknown message type %q", m.Type)
}

func (s *Server) attach() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		return false
	}
	s.attached = true
	return true
}

func (s *Server) detach() {
	s.mu.Lock()
	s.attached = false
	s.mu.Unlock()
}

// StatusSocketHandler serves the single operator: events in, status out.
func (s *Server) StatusSocketHandler(w http.ResponseWriter, r *http.Request) {
	if !s.attach() {
		http.Error(w, "another operator is connected", http.StatusConflict)
		return
	}
	defer s.detach()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()
	log.Printf("operator connected from %v", conn.RemoteAddr())

	done := make(chan struct{})
	// Read and process incoming messages
	go func() {
		defer close(done)
		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				log.Printf("operator %v: %v", conn.RemoteAddr(), err)
				return
			}
			ev, err := msg.Event()
			if err != nil {
				log.Printf("operator %v: %v", conn.RemoteAddr(), err)
				continue
			}
			s.loop.Post(ev)
		}
	}()

	send := func(status session.Status) bool {
		data, err := json.Marshal(status)
		if err != nil {
			log.Print(err)
			return false
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Print(err)
			return false
		}
		return true
	}

	ctx := r.Context()
	status, changed := s.currentStatus()
	for send(status) {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-changed:
		}
		status, changed = s.currentStatus()
	}
}

func (s *Server) statusCallback(status session.Status) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if reflect.DeepEqual(status, s.status) {
		return
	}
	s.status = status
	close(s.changed)
	s.changed = make(chan struct{})
}
