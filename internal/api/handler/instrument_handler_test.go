package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/blaisecz/questionnaire-report/internal/domain"
	"github.com/blaisecz/questionnaire-report/internal/scoring"
	"github.com/blaisecz/questionnaire-report/pkg/problem"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestInstrumentHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		mockService    *MockInstrumentService
		wantStatusCode int
		wantCount      int
	}{
		{
			name: "catalog",
			mockService: &MockInstrumentService{
				listFunc: func(ctx context.Context) ([]domain.InstrumentSummary, error) {
					return []domain.InstrumentSummary{
						{ID: "WHO5", Kind: scoring.KindSum},
						{ID: "PSQI", Kind: scoring.KindPSQI},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantCount:      2,
		},
		{
			name: "service error",
			mockService: &MockInstrumentService{
				listFunc: func(ctx context.Context) ([]domain.InstrumentSummary, error) {
					return nil, fmt.Errorf("boom")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInstrumentHandler(tt.mockService, &MockReportService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/instruments", nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode != http.StatusOK {
				return
			}

			var got []domain.InstrumentSummary
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("List() returned %d instruments, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestInstrumentHandler_GetByID(t *testing.T) {
	who5 := &scoring.Instrument{ID: "WHO5", Kind: scoring.KindSum}

	tests := []struct {
		name           string
		id             string
		wantStatusCode int
	}{
		{name: "found", id: "WHO5", wantStatusCode: http.StatusOK},
		{name: "not found", id: "NOPE", wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInstrumentHandler(&MockInstrumentService{
				getByIDFunc: func(ctx context.Context, id string) (*scoring.Instrument, error) {
					if id == who5.ID {
						return who5, nil
					}
					return nil, domain.ErrNotFound
				},
			}, &MockReportService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/instruments/"+tt.id, nil)
			req = withURLParam(req, "instrumentId", tt.id)
			rec := httptest.NewRecorder()

			handler.GetByID(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetByID() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestInstrumentHandler_Score(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockReportService
		wantStatusCode int
		wantKind       string
	}{
		{
			name: "valid answers",
			body: `{"answers": {"Q1": 3, "Q2": "3"}}`,
			mockService: &MockReportService{
				scoreFunc: func(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error) {
					return &domain.ScoreResponse{
						InstrumentID: instrumentID,
						Scores:       scoring.Scores{scoring.OverallScore: 6},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockReportService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "answers missing",
			body:           `{}`,
			mockService:    &MockReportService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown instrument",
			body: `{"answers": {"Q1": 3}}`,
			mockService: &MockReportService{
				scoreFunc: func(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error) {
					return nil, &scoring.AnswerError{Instrument: instrumentID, Err: scoring.ErrUnknownInstrument}
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "answer out of range",
			body: `{"answers": {"Q1": 9}}`,
			mockService: &MockReportService{
				scoreFunc: func(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error) {
					return nil, &scoring.AnswerError{Instrument: instrumentID, Field: "Q1", Value: 9, Err: scoring.ErrOutOfRange}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantKind:       "OutOfRange",
		},
		{
			name: "unexpected error",
			body: `{"answers": {"Q1": 3}}`,
			mockService: &MockReportService{
				scoreFunc: func(ctx context.Context, instrumentID string, answers scoring.Answers) (*domain.ScoreResponse, error) {
					return nil, fmt.Errorf("boom")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInstrumentHandler(&MockInstrumentService{}, tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/instruments/WHO5/score", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParam(req, "instrumentId", "WHO5")
			rec := httptest.NewRecorder()

			handler.Score(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Score() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantKind == "" {
				return
			}

			var p problem.Problem
			if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
				t.Fatalf("decode problem: %v", err)
			}
			if len(p.Scoring) != 1 || p.Scoring[0].Kind != tt.wantKind {
				t.Errorf("scoring_errors = %+v, want one %s", p.Scoring, tt.wantKind)
			}
			if p.Scoring[0].Instrument != "WHO5" || p.Scoring[0].Field != "Q1" {
				t.Errorf("scoring_errors[0] = %+v, want WHO5/Q1", p.Scoring[0])
			}
		})
	}
}
