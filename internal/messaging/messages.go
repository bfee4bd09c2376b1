package messaging

import (
	"sort"
	"strings"
	"time"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/simerr"
)

// SendMessageParams describes one outgoing message. The recipient must
// be a chat JID; replies reference a message in the same chat.
type SendMessageParams struct {
	Recipient        string
	Message          string
	ReplyToMessageID *string
}

// SendMessageResult acknowledges a send.
type SendMessageResult struct {
	Success       bool   `json:"success"`
	StatusMessage string `json:"status_message"`
	MessageID     string `json:"message_id"`
	Timestamp     string `json:"timestamp"`
}

func (s *Service) SendMessage(p SendMessageParams) (SendMessageResult, error) {
	var empty SendMessageResult

	recipient := strings.TrimSpace(p.Recipient)
	if recipient == "" {
		return empty, simerr.InvalidRequest("Recipient ID cannot be empty.")
	}
	if strings.TrimSpace(p.Message) == "" {
		return empty, simerr.Validation("Message content cannot be empty.")
	}
	if !strings.Contains(recipient, "@") {
		return empty, simerr.InvalidRequest("Recipient '%s' not found or is not a WhatsApp user.", recipient)
	}
	if !jidPattern.MatchString(recipient) {
		return empty, simerr.InvalidRequest("Invalid JID format: '%s'.", recipient)
	}

	s.store.Lock()
	defer s.store.Unlock()

	chat, ok := s.store.Chats[recipient]
	if strings.HasSuffix(recipient, groupJIDSuffix) {
		if !ok || !chat.IsGroup {
			return empty, simerr.InvalidRequest("Recipient group chat '%s' not found.", recipient)
		}
	} else if !ok {
		return empty, simerr.InvalidRequest("Recipient '%s' not found or is not a WhatsApp user.", recipient)
	}

	if s.store.CurrentUserJID == "" {
		return empty, simerr.InvalidRequest("Cannot send message: Current user JID is not configured.")
	}

	var quoted *model.QuotedMessageInfo
	if p.ReplyToMessageID != nil {
		var target *model.Message
		for i := range chat.Messages {
			if chat.Messages[i].MessageID == *p.ReplyToMessageID {
				target = &chat.Messages[i]
				break
			}
		}
		if target == nil {
			return empty, simerr.NotFound("Message with ID %s not found in chat %s.", *p.ReplyToMessageID, recipient)
		}
		if strings.TrimSpace(target.SenderJID) == "" {
			return empty, simerr.NotFound("Message with ID %s is malformed and lacks a valid sender_jid. Cannot create reply.", *p.ReplyToMessageID)
		}
		quoted = &model.QuotedMessageInfo{
			QuotedMessageID: *p.ReplyToMessageID,
			QuotedSenderJID: target.SenderJID,
		}
		if target.TextContent != nil && *target.TextContent != "" {
			quoted.QuotedTextPreview = target.TextContent
		}
	}

	messageID := ids.New(ids.MessagePrefix)
	timestamp := ids.NowISO()
	senderName := "Me"
	status := "sent"
	text := p.Message

	chat.Messages = append(chat.Messages, model.Message{
		MessageID:         messageID,
		ChatJID:           recipient,
		SenderJID:         s.store.CurrentUserJID,
		SenderName:        &senderName,
		Timestamp:         timestamp,
		TextContent:       &text,
		IsOutgoing:        true,
		QuotedMessageInfo: quoted,
		Status:            &status,
	})
	ts := timestamp
	chat.LastActiveTimestamp = &ts

	return SendMessageResult{
		Success:       true,
		StatusMessage: "Message sent successfully.",
		MessageID:     messageID,
		Timestamp:     timestamp,
	}, nil
}

// MessageMatch is one search hit with its surrounding messages.
type MessageMatch struct {
	MatchedMessage model.Message   `json:"matched_message"`
	ContextBefore  []model.Message `json:"context_before"`
	ContextAfter   []model.Message `json:"context_after"`
}

// MessagesPage is the ListMessages response envelope. Results holds
// MessageMatch values when context is requested, bare model.Message
// values otherwise.
type MessagesPage struct {
	Results      []any `json:"results"`
	TotalMatches int   `json:"total_matches"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
}

// ListMessagesParams searches messages across chats. Nil fields take
// their defaults: limit 20, page 0, include_context true, one context
// message on each side.
type ListMessagesParams struct {
	After             *string
	Before            *string
	SenderPhoneNumber *string
	ChatJID           *string
	Query             *string
	Limit             *int
	Page              *int
	IncludeContext    *bool
	ContextBefore     *int
	ContextAfter      *int
}

func (s *Service) ListMessages(p ListMessagesParams) (MessagesPage, error) {
	var empty MessagesPage

	limit := defaultMessageLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	pageNum := 0
	if p.Page != nil {
		pageNum = *p.Page
	}
	includeContext := true
	if p.IncludeContext != nil {
		includeContext = *p.IncludeContext
	}
	ctxBefore := defaultContextSize
	if p.ContextBefore != nil {
		ctxBefore = *p.ContextBefore
	}
	ctxAfter := defaultContextSize
	if p.ContextAfter != nil {
		ctxAfter = *p.ContextAfter
	}
	switch {
	case limit < 0:
		return empty, simerr.Validation("Limit must be greater than or equal to 0.")
	case pageNum < 0:
		return empty, simerr.Validation("Page must be greater than or equal to 0.")
	case ctxBefore < 0:
		return empty, simerr.Validation("Context before must be greater than or equal to 0.")
	case ctxAfter < 0:
		return empty, simerr.Validation("Context after must be greater than or equal to 0.")
	}

	if p.SenderPhoneNumber != nil && !phonePattern.MatchString(*p.SenderPhoneNumber) {
		return empty, simerr.InvalidRequest("Invalid sender_phone_number format: %s", *p.SenderPhoneNumber)
	}

	after, err := parseBound(p.After, "after")
	if err != nil {
		return empty, err
	}
	before, err := parseBound(p.Before, "before")
	if err != nil {
		return empty, err
	}
	if after != nil && before != nil && before.Before(*after) {
		return empty, simerr.InvalidRequest("'before' date cannot be earlier than 'after' date.")
	}

	if p.ChatJID != nil && !strings.Contains(*p.ChatJID, "@") {
		return empty, simerr.InvalidRequest("Invalid chat_jid format: %s", *p.ChatJID)
	}

	var senderPhoneDigits string
	if p.SenderPhoneNumber != nil {
		senderPhoneDigits = strings.ReplaceAll(strings.TrimPrefix(*p.SenderPhoneNumber, "+"), "-", "")
	}

	s.store.RLock()
	defer s.store.RUnlock()

	type match struct {
		msg      model.Message
		chatMsgs []model.Message
		index    int
	}
	var matches []match

	for _, chat := range s.store.Chats {
		if p.ChatJID != nil && chat.ChatJID != *p.ChatJID {
			continue
		}

		sorted := make([]model.Message, len(chat.Messages))
		copy(sorted, chat.Messages)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp < sorted[j].Timestamp
		})

		for i, msg := range sorted {
			if senderPhoneDigits != "" {
				jidDigits, _, _ := strings.Cut(msg.SenderJID, "@")
				if jidDigits != senderPhoneDigits {
					continue
				}
			}
			ts, ok := parseTimestamp(msg.Timestamp)
			if !ok {
				continue
			}
			if after != nil && !ts.After(*after) {
				continue
			}
			if before != nil && !ts.Before(*before) {
				continue
			}
			if p.Query != nil {
				if msg.TextContent == nil ||
					!strings.Contains(strings.ToLower(*msg.TextContent), strings.ToLower(*p.Query)) {
					continue
				}
			}
			matches = append(matches, match{msg: msg, chatMsgs: sorted, index: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].msg.Timestamp < matches[j].msg.Timestamp
	})

	total := len(matches)
	start := pageNum * limit
	if start >= total && !(pageNum == 0 && total == 0) {
		return empty, simerr.InvalidRequest("The requested page number is out of range.")
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]any, 0, end-start)
	for _, m := range matches[start:end] {
		if !includeContext {
			results = append(results, m.msg)
			continue
		}
		item := MessageMatch{
			MatchedMessage: m.msg,
			ContextBefore:  []model.Message{},
			ContextAfter:   []model.Message{},
		}
		if ctxBefore > 0 {
			from := m.index - ctxBefore
			if from < 0 {
				from = 0
			}
			item.ContextBefore = append(item.ContextBefore, m.chatMsgs[from:m.index]...)
		}
		if ctxAfter > 0 {
			to := m.index + 1 + ctxAfter
			if to > len(m.chatMsgs) {
				to = len(m.chatMsgs)
			}
			item.ContextAfter = append(item.ContextAfter, m.chatMsgs[m.index+1:to]...)
		}
		results = append(results, item)
	}

	return MessagesPage{Results: results, TotalMatches: total, Page: pageNum, Limit: limit}, nil
}

// MessageContext surrounds one message with its chronological
// neighbors from the same chat.
type MessageContext struct {
	TargetMessage  model.Message   `json:"target_message"`
	MessagesBefore []model.Message `json:"messages_before"`
	MessagesAfter  []model.Message `json:"messages_after"`
}

// GetMessageContextParams addresses one message by ID. Nil counts take
// the default of five messages on each side.
type GetMessageContextParams struct {
	MessageID string
	Before    *int
	After     *int
}

func (s *Service) GetMessageContext(p GetMessageContextParams) (MessageContext, error) {
	var empty MessageContext

	if strings.TrimSpace(p.MessageID) == "" {
		return empty, simerr.Validation("Message ID cannot be empty.")
	}
	before := defaultMessageContext
	if p.Before != nil {
		before = *p.Before
	}
	after := defaultMessageContext
	if p.After != nil {
		after = *p.After
	}
	switch {
	case before < 0:
		return empty, simerr.InvalidRequest("Parameter 'before' cannot be negative.")
	case before > maxContextMessages:
		return empty, simerr.InvalidRequest("Parameter 'before' cannot exceed %d.", maxContextMessages)
	case after < 0:
		return empty, simerr.InvalidRequest("Parameter 'after' cannot be negative.")
	case after > maxContextMessages:
		return empty, simerr.InvalidRequest("Parameter 'after' cannot exceed %d.", maxContextMessages)
	}

	s.store.RLock()
	defer s.store.RUnlock()

	for _, chat := range s.store.Chats {
		sorted := make([]model.Message, len(chat.Messages))
		copy(sorted, chat.Messages)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp < sorted[j].Timestamp
		})

		for i, msg := range sorted {
			if msg.MessageID != p.MessageID {
				continue
			}
			from := i - before
			if from < 0 {
				from = 0
			}
			to := i + 1 + after
			if to > len(sorted) {
				to = len(sorted)
			}
			return MessageContext{
				TargetMessage:  msg,
				MessagesBefore: append([]model.Message{}, sorted[from:i]...),
				MessagesAfter:  append([]model.Message{}, sorted[i+1:to]...),
			}, nil
		}
	}
	return empty, simerr.NotFound("Message with ID %s not found.", p.MessageID)
}

// parseBound reads an after/before search bound. Only the Z-suffixed
// second-precision form is accepted.
func parseBound(v *string, name string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := time.Parse(boundLayout, *v)
	if err != nil {
		return nil, simerr.InvalidRequest(
			"Invalid ISO-8601 datetime format for parameter '%s': Invalid WhatsApp datetime format: %s. Expected ISO 8601 format with Z suffix (YYYY-MM-DDTHH:MM:SSZ).",
			name, *v)
	}
	return &t, nil
}
