package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

func TestAnalyzeResponseDisabled(t *testing.T) {
	s := NewAIService(config.AIConfig{})

	_, err := s.AnalyzeResponse(context.Background(), &model.Response{})

	assert.ErrorIs(t, err, util.ErrAnalysisUnavailable)
}

func TestAnalyzeResponseCallsEndpoint(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  Resumen ejecutivo.  "}},
			},
		})
	}))
	defer server.Close()

	s := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4o-mini"})
	rating := 3
	rec := &model.Response{
		Area:               "Sales",
		ExitReasonCategory: "Presión por metas",
		ExperienceRating:   &rating,
	}

	analysis, err := s.AnalyzeResponse(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, "Resumen ejecutivo.", analysis)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	messages, ok := gotBody["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
}

func TestAnalyzeResponseAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	s := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4o-mini"})

	_, err := s.AnalyzeResponse(context.Background(), &model.Response{})

	assert.ErrorContains(t, err, "status 429")
}

func TestSurveySummaryPromptSkipsEmptyFields(t *testing.T) {
	rating := 9
	rec := &model.Response{
		FullName:         "Laura Pérez",
		Area:             "Tech",
		ExperienceRating: &rating,
	}

	prompt := surveySummaryPrompt(rec)

	assert.Contains(t, prompt, "Nombre: Laura Pérez")
	assert.Contains(t, prompt, "Calificación de experiencia (1-10): 9")
	assert.NotContains(t, prompt, "País:")
	assert.NotContains(t, prompt, "Nueva empresa:")
}
