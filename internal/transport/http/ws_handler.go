package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"milestone-quiz-service/internal/app"
	"milestone-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler runs the interactive quiz flow over a websocket: the client
// connects with the subject age, receives the applicable questions, sends
// answer sets, and gets a result back per set.
type WSHandler struct {
	service  *app.AssessmentService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.AssessmentService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answersPayload struct {
	Answers []domain.Answer `json:"answers"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the
// assessment use cases. Writes happen only from this goroutine, so no
// writer pump is needed.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	ageRaw := r.URL.Query().Get("age")
	age, err := strconv.Atoi(ageRaw)
	if err != nil {
		http.Error(w, "missing or invalid age", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	questions, err := h.service.QuestionsForAge(r.Context(), age)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	if err := conn.WriteJSON(outboundMessage[questionsResponse]{
		Type:    "questions",
		Payload: questionsResponse{AgeMonths: age, Questions: questions},
	}); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "answers":
			var payload answersPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.writeWS(conn, outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answers payload"}})
				continue
			}
			result := h.service.Evaluate(payload.Answers)
			h.writeWS(conn, outboundMessage[any]{Type: "result", Payload: result})
		default:
			h.writeWS(conn, outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}
}

func (h *WSHandler) writeWS(conn *websocket.Conn, msg outboundMessage[any]) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws write error: %v", err)
	}
}
