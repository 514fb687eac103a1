package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"milestone-quiz-service/internal/app"
	"milestone-quiz-service/internal/domain"
)

// Handler exposes the assessment use cases over plain JSON endpoints.
type Handler struct {
	service *app.AssessmentService
}

func NewHandler(service *app.AssessmentService) *Handler {
	return &Handler{service: service}
}

type questionsResponse struct {
	AgeMonths int               `json:"ageMonths"`
	Questions []domain.Question `json:"questions"`
}

type assessmentRequest struct {
	Answers []domain.Answer `json:"answers"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Questions serves GET /api/questions?age=N.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ageRaw := r.URL.Query().Get("age")
	age, err := strconv.Atoi(ageRaw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "age must be an integer number of months")
		return
	}

	questions, err := h.service.QuestionsForAge(r.Context(), age)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidAge) {
			status = http.StatusBadRequest
		} else if errors.Is(err, domain.ErrCatalogNotFound) {
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{AgeMonths: age, Questions: questions})
}

// Assessment serves POST /api/assessment: answers in, QuizResult out.
func (h *Handler) Assessment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req assessmentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid assessment payload")
		return
	}

	writeJSON(w, http.StatusOK, h.service.Evaluate(req.Answers))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
