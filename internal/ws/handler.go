// Package ws streams live-preview events between the hub and open
// editor sessions.
package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/infrastructure/monitoring"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // editor and backend are same-origin in production; relaxed for dev
	},
}

// Message is the envelope exchanged over the stream.
type Message struct {
	Type       string         `json:"type"`
	DocumentID string         `json:"document_id,omitempty"`
	FrameID    string         `json:"frame_id,omitempty"`
	Message    string         `json:"message,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// client wraps a connection with a write lock. gorilla/websocket allows
// one concurrent writer per connection, and writes come from both the
// connection's own read loop (acks, pongs) and broadcast callers on
// HTTP handler goroutines.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Handler manages preview subscriptions. Editor sessions subscribe to
// a document and receive a reload event whenever it is saved. Frames
// report their runtime errors back over the same stream; those are
// routed into the central error handler with the frame identity intact.
type Handler struct {
	log     *zap.Logger
	errs    *errors.Handler
	metrics *monitoring.Metrics

	mu   sync.RWMutex
	subs map[string]map[*client]bool // document id -> clients
}

// NewHandler creates a stream handler.
func NewHandler(log *zap.Logger, handler *errors.Handler, metrics *monitoring.Metrics) *Handler {
	return &Handler{
		log:     log,
		errs:    handler,
		metrics: metrics,
		subs:    make(map[string]map[*client]bool),
	}
}

// HandleConnection upgrades the request and serves the message loop.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.errs.Handle(errors.Wrap(errors.CategoryNetwork, err, "websocket upgrade failed"))
		return
	}
	cl := &client{conn: conn}
	defer func() {
		h.dropClient(cl)
		conn.Close()
		h.metrics.DecWSConnections()
	}()
	h.metrics.IncWSConnections()

	h.send(cl, Message{Type: "system", Message: "connected to content hub stream"})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		h.metrics.RecordWSMessage("in", msg.Type)

		switch msg.Type {
		case "subscribe":
			h.subscribe(cl, msg.DocumentID)
			h.send(cl, Message{Type: "subscribed", DocumentID: msg.DocumentID})
		case "unsubscribe":
			h.unsubscribe(cl, msg.DocumentID)
		case "frame_error":
			// A sandboxed frame reported a runtime failure.
			h.errs.HandleFrameError(msg.FrameID, msg.Message, msg.Details)
			h.send(cl, Message{Type: "frame_error_ack", FrameID: msg.FrameID})
		case "ping":
			h.send(cl, Message{Type: "pong"})
		default:
			h.send(cl, Message{Type: "error", Message: "unknown message type"})
		}
	}
}

// NotifyDocument tells every subscriber of id to reload its preview.
// Safe to call from any goroutine.
func (h *Handler) NotifyDocument(id string) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.subs[id]))
	for cl := range h.subs[id] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		h.send(cl, Message{Type: "document_updated", DocumentID: id})
	}
}

// Subscribers returns how many connections watch id.
func (h *Handler) Subscribers(id string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[id])
}

func (h *Handler) subscribe(cl *client, id string) {
	if id == "" {
		return
	}
	h.mu.Lock()
	if h.subs[id] == nil {
		h.subs[id] = make(map[*client]bool)
	}
	h.subs[id][cl] = true
	h.mu.Unlock()
}

func (h *Handler) unsubscribe(cl *client, id string) {
	h.mu.Lock()
	delete(h.subs[id], cl)
	h.mu.Unlock()
}

func (h *Handler) dropClient(cl *client) {
	h.mu.Lock()
	for id, clients := range h.subs {
		delete(clients, cl)
		if len(clients) == 0 {
			delete(h.subs, id)
		}
	}
	h.mu.Unlock()
}

func (h *Handler) send(cl *client, msg Message) {
	if err := cl.write(msg); err != nil {
		h.log.Warn("websocket write failed", zap.Error(err))
		return
	}
	h.metrics.RecordWSMessage("out", msg.Type)
}
