package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type ChatHandler struct {
	storefrontUsecase usecase.StorefrontUC
	logger            logger.Logger
}

func NewChatHandler(storefrontUsecase usecase.StorefrontUC, logger logger.Logger) *ChatHandler {
	return &ChatHandler{storefrontUsecase: storefrontUsecase, logger: logger}
}

// listMessages
//
//	@Summary	Диалог с ассистентом
//	@Tags		chat
//	@Produce	json
//	@Success	200	{array}	ChatMessageResponse
//	@Router		/chat/messages [get]
func (c *ChatHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toChatMessageResponses(c.storefrontUsecase.Messages()))
}

// sendMessage
//
//	@Summary		Отправить сообщение ассистенту
//	@Description	Сообщение добавляется сразу, ответ ассистента приходит событием chat_reply
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			message	body		SendMessageRequest	true	"Сообщение"
//	@Success		202		{object}	ChatMessageResponse
//	@Failure		400		{object}	ErrorResponse	"Пустое сообщение"
//	@Failure		409		{object}	ErrorResponse	"Ассистент ещё отвечает"
//	@Router			/chat/messages [post]
func (c *ChatHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	msg, err := c.storefrontUsecase.SendMessage(r.Context(), req.Text)
	if err != nil {
		c.logger.Warnf("send message: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, toChatMessageResponse(msg))
}
