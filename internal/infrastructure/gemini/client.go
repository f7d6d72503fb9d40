// Package gemini — REST-клиент Gemini generateContent.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 4 << 10

type Client struct {
	httpClient *http.Client
	cfg        *cfg.GeminiCfg
	logger     logger.Logger
}

// NewClient создаёт клиента с инструментированным транспортом. Таймаут запроса задаёт вызывающий через ctx.
func NewClient(cfg *cfg.GeminiCfg, logger logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		cfg:        cfg,
		logger:     logger,
	}
}

// Generate отправляет историю и новое сообщение одним запросом и возвращает текст первого кандидата.
// Пустой ответ модели не считается ошибкой.
func (c *Client) Generate(ctx context.Context, req *usecase.GenerateReq) (string, error) {
	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", e.Wrap(whereami.WhereAmI(), apiError(resp))
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	c.logger.Debugf("gemini %s: prompt_tokens=%d completion_tokens=%d",
		c.cfg.Model, out.UsageMetadata.PromptTokenCount, out.UsageMetadata.CandidatesTokenCount)

	if len(out.Candidates) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

func buildRequest(req *usecase.GenerateReq) *generateContentRequest {
	contents := make([]Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, toContent(turn))
	}
	contents = append(contents, toContent(domain.Turn{Role: domain.RoleUser, Text: req.Text}))

	temperature := req.Temperature
	out := &generateContentRequest{
		Contents:         contents,
		GenerationConfig: &GenerationConfig{Temperature: &temperature},
	}
	if req.SystemInstruction != "" {
		out.SystemInstruction = &SystemInstruction{Parts: []Part{{Text: req.SystemInstruction}}}
	}

	return out
}

func toContent(turn domain.Turn) Content {
	return Content{
		Role:  string(turn.Role),
		Parts: []Part{{Text: turn.Text}},
	}
}

func apiError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var parsed errorResponse
	if err := json.Unmarshal(data, &parsed); err == nil && parsed.Error.Message != "" {
		return fmt.Errorf("gemini api error %d (%s): %s", resp.StatusCode, parsed.Error.Status, parsed.Error.Message)
	}

	return fmt.Errorf("gemini api error %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
}
