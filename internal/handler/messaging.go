package handler

import (
	"net/http"

	"saas-sim/internal/messaging"

	"github.com/labstack/echo/v4"
)

type MessagingHandler struct {
	svc *messaging.Service
}

func NewMessagingHandler(svc *messaging.Service) *MessagingHandler {
	return &MessagingHandler{svc: svc}
}

func (h *MessagingHandler) ListChats(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	page, err := qInt(c, "page")
	if err != nil {
		return writeError(c, err)
	}
	includeLast, err := qBool(c, "include_last_message")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListChats(messaging.ListChatsParams{
		Query:              qString(c, "query"),
		Limit:              limit,
		Page:               page,
		IncludeLastMessage: includeLast,
		SortBy:             qString(c, "sort_by"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MessagingHandler) GetChat(c echo.Context) error {
	includeLast, err := qBool(c, "include_last_message")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.GetChat(messaging.GetChatParams{
		ChatJID:            c.Param("jid"),
		IncludeLastMessage: includeLast,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type sendMessageRequest struct {
	Recipient        string  `json:"recipient"`
	Message          string  `json:"message"`
	ReplyToMessageID *string `json:"reply_to_message_id"`
}

func (h *MessagingHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.SendMessage(messaging.SendMessageParams{
		Recipient:        req.Recipient,
		Message:          req.Message,
		ReplyToMessageID: req.ReplyToMessageID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MessagingHandler) GetMessageContext(c echo.Context) error {
	before, err := qInt(c, "before")
	if err != nil {
		return writeError(c, err)
	}
	after, err := qInt(c, "after")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.GetMessageContext(messaging.GetMessageContextParams{
		MessageID: c.Param("id"),
		Before:    before,
		After:     after,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MessagingHandler) ListMessages(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	page, err := qInt(c, "page")
	if err != nil {
		return writeError(c, err)
	}
	includeContext, err := qBool(c, "include_context")
	if err != nil {
		return writeError(c, err)
	}
	ctxBefore, err := qInt(c, "context_before")
	if err != nil {
		return writeError(c, err)
	}
	ctxAfter, err := qInt(c, "context_after")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListMessages(messaging.ListMessagesParams{
		After:             qString(c, "after"),
		Before:            qString(c, "before"),
		SenderPhoneNumber: qString(c, "sender_phone_number"),
		ChatJID:           qString(c, "chat_jid"),
		Query:             qString(c, "query"),
		Limit:             limit,
		Page:              page,
		IncludeContext:    includeContext,
		ContextBefore:     ctxBefore,
		ContextAfter:      ctxAfter,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
