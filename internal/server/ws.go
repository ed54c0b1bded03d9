package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// streamRequest is one landmark frame sent by a client.
type streamRequest struct {
	Points     []detector.Point3D `json:"points"`
	Handedness string             `json:"handedness,omitempty"`
}

// streamResponse answers one frame with its feature vector.
type streamResponse struct {
	Features  []float64 `json:"features,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// StreamHandler extracts feature vectors from landmark frames streamed
// over a WebSocket connection. Each text frame carries one pose and is
// answered with one feature vector; connections share nothing, so any
// number of clients can stream concurrently.
type StreamHandler struct {
	extractor *feature.Extractor
}

// NewStreamHandler creates a new StreamHandler with the given extractor.
func NewStreamHandler(e *feature.Extractor) *StreamHandler {
	return &StreamHandler{extractor: e}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var req streamRequest
		if err := json.Unmarshal(data, &req); err != nil {
			h.reply(conn, streamResponse{Error: "invalid frame: " + err.Error()})
			continue
		}

		features, err := h.extractor.Extract(req.Points)
		if err != nil {
			h.reply(conn, streamResponse{Error: err.Error()})
			continue
		}

		h.reply(conn, streamResponse{Features: features})
	}
}

// reply sends one response frame, stamping it with the current time.
func (h *StreamHandler) reply(conn *websocket.Conn, resp streamResponse) {
	resp.Timestamp = time.Now().UnixMilli()

	msg, err := json.Marshal(resp)
	if err != nil {
		log.Printf("websocket encode error: %v", err)
		return
	}

	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Printf("websocket write error: %v", err)
	}
}
