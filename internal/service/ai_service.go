package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

// AIService generates a narrative analysis of an exit survey through an
// OpenAI-compatible chat completions endpoint.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *AIService) Enabled() bool {
	return s.config.APIKey != "" && s.config.BaseURL != ""
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const analysisSystemPrompt = "Eres un analista de Recursos Humanos. Analiza la siguiente " +
	"encuesta de retiro y entrega un resumen ejecutivo en español: motivos principales de la " +
	"salida, señales de alerta para retención, y una recomendación accionable. Sé concreto y " +
	"breve, máximo tres párrafos."

// AnalyzeResponse asks the model for an executive summary of one
// survey. Returns util.ErrAnalysisUnavailable when no API key is
// configured.
func (s *AIService) AnalyzeResponse(ctx context.Context, resp *model.Response) (string, error) {
	if !s.Enabled() {
		return "", util.ErrAnalysisUnavailable
	}

	messages := []AIChatMessage{
		{Role: "system", Content: analysisSystemPrompt},
		{Role: "user", Content: surveySummaryPrompt(resp)},
	}

	reqBody := map[string]interface{}{
		"model":    s.config.Model,
		"messages": messages,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	httpResp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return "", fmt.Errorf("AI API error (status %d): %s", httpResp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("AI API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// surveySummaryPrompt flattens the canonical fields into the user
// message. Only answered fields are included.
func surveySummaryPrompt(resp *model.Response) string {
	var b strings.Builder
	write := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}

	write("Nombre", resp.FullName)
	write("Área", resp.Area)
	write("País", resp.Country)
	write("Tiempo en la empresa", resp.Tenure)
	write("Último líder", resp.LastLeader)
	write("Categoría del motivo de salida", resp.ExitReasonCategory)
	write("Motivo de salida", resp.ExitReasonDetail)
	if resp.ExperienceRating != nil {
		fmt.Fprintf(&b, "Calificación de experiencia (1-10): %d\n", *resp.ExperienceRating)
	}
	write("Recomendaría la empresa", resp.WouldRecommend)
	write("Regresaría", resp.WouldReturn)
	write("Lo que más disfrutó", resp.WhatEnjoyed)
	write("Qué mejorar", resp.WhatToImprove)
	write("Nueva empresa", resp.NewCompanyInfo)

	for item, rating := range resp.SatisfactionMap() {
		fmt.Fprintf(&b, "Satisfacción - %s: %s\n", item, rating)
	}

	return b.String()
}
