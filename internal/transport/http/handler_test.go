package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"milestone-quiz-service/internal/app"
	"milestone-quiz-service/internal/domain"
	"milestone-quiz-service/internal/infra/memory"
	"milestone-quiz-service/internal/scoring"
)

func TestQuestionsEndpoint(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/questions?age=6")
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		AgeMonths int               `json:"ageMonths"`
		Questions []domain.Question `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.AgeMonths != 6 {
		t.Fatalf("expected age echoed, got %d", payload.AgeMonths)
	}
	if len(payload.Questions) != 2 {
		t.Fatalf("expected 2 questions at 6 months, got %d", len(payload.Questions))
	}
	if payload.Questions[0].ID != "gm-rolls" || payload.Questions[1].ID != "lang-coos" {
		t.Fatalf("expected catalog order preserved, got %s,%s", payload.Questions[0].ID, payload.Questions[1].ID)
	}
}

func TestQuestionsEndpointRejectsBadAge(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	for _, query := range []string{"", "age=abc", "age=-1"} {
		resp, err := http.Get(server.URL + "/api/questions?" + query)
		if err != nil {
			t.Fatalf("get questions: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", query, resp.StatusCode)
		}
	}
}

func TestAssessmentEndpoint(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	body := `{"answers":[
		{"category":"gross_motor","score":3,"weight":1},
		{"category":"gross_motor","score":3,"weight":1}
	]}`
	resp, err := http.Post(server.URL+"/api/assessment", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post assessment: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.QuizResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Percentage != 100 || result.Tier != domain.TierOnTrack {
		t.Fatalf("expected 100%% on-track, got %+v", result)
	}
	if result.CategoryBreakdown["Gross Motor"] != 100 {
		t.Fatalf("expected label-keyed breakdown, got %v", result.CategoryBreakdown)
	}
}

func TestAssessmentEndpointEmptyAnswers(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/assessment", "application/json", strings.NewReader(`{"answers":[]}`))
	if err != nil {
		t.Fatalf("post assessment: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty answers are a defined result, expected 200, got %d", resp.StatusCode)
	}

	var result domain.QuizResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Percentage != 0 || result.Tier != domain.TierOnTrack {
		t.Fatalf("expected defined empty result, got %+v", result)
	}
}

func TestAssessmentEndpointRejectsMalformedBody(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/assessment", "application/json", strings.NewReader(`{"answers":`))
	if err != nil {
		t.Fatalf("post assessment: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.StatusCode)
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	service := newTestService()
	handler := NewHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/questions", handler.Questions)
	mux.HandleFunc("/api/assessment", handler.Assessment)
	return httptest.NewServer(mux)
}

func newTestService() *app.AssessmentService {
	repo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(testCatalog()), time.Minute)
	return app.NewAssessmentService(repo, scoring.NewCalculator(scoring.DefaultConfig()))
}

func testCatalog() []domain.Question {
	return []domain.Question{
		{ID: "gm-rolls", Category: domain.CategoryGrossMotor, AgeMin: 3, AgeMax: 6, Weight: 1,
			Prompt: "Does your baby roll over in both directions?",
			Options: []domain.Option{
				{Label: "Not yet", Score: 0},
				{Label: "Sometimes", Score: 2},
				{Label: "Fully", Score: 3},
			}},
		{ID: "lang-coos", Category: domain.CategoryLanguage, AgeMin: 2, AgeMax: 7, Weight: 1,
			Prompt: "Does your baby coo and make vowel sounds?"},
		{ID: "fm-pincer", Category: domain.CategoryFineMotor, AgeMin: 8, AgeMax: 12, Weight: 1,
			Prompt: "Does your baby use a pincer grasp?"},
	}
}
