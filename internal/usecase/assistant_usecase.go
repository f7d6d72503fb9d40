package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	ReplyNotConfigured = "Error: La API Key de Gemini no está configurada. Por favor configura la variable de entorno GEMINI_API_KEY."
	ReplyEmpty         = "Lo siento, no pude procesar tu solicitud."
	ReplyFailure       = "Lo siento, hubo un problema técnico. Intenta de nuevo más tarde."
)

// AssistantUseCase ведёт диалог с генеративной моделью. Состояние между вызовами не хранится:
// каждый ответ зависит только от инструкции, истории и нового сообщения.
type AssistantUseCase struct {
	infra             GenerativeInfra
	cfg               *cfg.GeminiCfg
	systemInstruction string
	logger            logger.Logger
}

// NewAssistantUC строит инструкцию один раз: каталог не меняется после старта.
func NewAssistantUC(infra GenerativeInfra, geminiCfg *cfg.GeminiCfg, storeCfg *cfg.StoreCfg,
	c *catalog.Catalog, logger logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{
		infra:             infra,
		cfg:               geminiCfg,
		systemInstruction: BuildSystemInstruction(storeCfg, c.Products()),
		logger:            logger,
	}
}

// Converse возвращает ответ ассистента. Без API-ключа сеть не используется.
func (a *AssistantUseCase) Converse(ctx context.Context, text string, history []domain.Turn) string {
	const op = "AssistantUseCase.Converse"

	if a.cfg.APIKey == "" {
		a.logger.Warnf("%s: %v", op, e.ErrAssistantNotConfigured)
		return ReplyNotConfigured
	}

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	reply, err := a.infra.Generate(ctx, NewGenerateReq(a.systemInstruction, history, text, a.cfg.Temperature))
	if err != nil {
		a.logger.Errorf(e.Wrap(op, err), "assistant call failed")
		return ReplyFailure
	}

	if strings.TrimSpace(reply) == "" {
		a.logger.Warnf("%s: empty reply from model", op)
		return ReplyEmpty
	}

	return reply
}

// SystemInstruction возвращает инструкцию, отправляемую с каждым запросом.
func (a *AssistantUseCase) SystemInstruction() string {
	return a.systemInstruction
}
