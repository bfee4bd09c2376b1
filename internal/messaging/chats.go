package messaging

import (
	"sort"
	"strings"
	"time"

	"saas-sim/internal/model"
	"saas-sim/internal/simerr"
)

// MessagePreview is the condensed last-message view on a chat summary.
type MessagePreview struct {
	MessageID   string  `json:"message_id"`
	TextSnippet *string `json:"text_snippet"`
	SenderName  *string `json:"sender_name"`
	Timestamp   string  `json:"timestamp"`
	IsOutgoing  bool    `json:"is_outgoing"`
}

// ChatSummary is one row of a chat listing.
type ChatSummary struct {
	ChatJID             string          `json:"chat_jid"`
	Name                *string         `json:"name"`
	IsGroup             bool            `json:"is_group"`
	LastActiveTimestamp *string         `json:"last_active_timestamp"`
	UnreadCount         *int            `json:"unread_count"`
	IsArchived          bool            `json:"is_archived"`
	IsPinned            bool            `json:"is_pinned"`
	LastMessagePreview  *MessagePreview `json:"last_message_preview"`
}

// ChatsPage is the ListChats response envelope.
type ChatsPage struct {
	Chats      []ChatSummary `json:"chats"`
	TotalChats int           `json:"total_chats"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}

// ListChatsParams filters and pages the chat listing. Nil fields take
// their defaults: limit 20, page 0, include_last_message true, sort_by
// last_active.
type ListChatsParams struct {
	Query              *string
	Limit              *int
	Page               *int
	IncludeLastMessage *bool
	SortBy             *string
}

func (s *Service) ListChats(p ListChatsParams) (ChatsPage, error) {
	var empty ChatsPage

	limit := defaultChatLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	if limit < 1 {
		return empty, simerr.Validation("Limit must be a positive integer.")
	}
	pageNum := 0
	if p.Page != nil {
		pageNum = *p.Page
	}
	includeLast := true
	if p.IncludeLastMessage != nil {
		includeLast = *p.IncludeLastMessage
	}
	sortBy := "last_active"
	if p.SortBy != nil {
		sortBy = *p.SortBy
	}
	if sortBy != "last_active" && sortBy != "name" {
		return empty, simerr.InvalidRequest("The specified sort_by parameter is not valid.")
	}

	s.store.RLock()
	defer s.store.RUnlock()

	var filtered []*model.Chat
	for _, c := range s.store.Chats {
		if p.Query != nil && *p.Query != "" {
			q := strings.ToLower(*p.Query)
			nameMatch := c.Name != nil && strings.Contains(strings.ToLower(*c.Name), q)
			jidMatch := strings.Contains(strings.ToLower(c.ChatJID), q)
			if !nameMatch && !jidMatch {
				continue
			}
		}
		filtered = append(filtered, c)
	}

	switch sortBy {
	case "last_active":
		sort.SliceStable(filtered, func(i, j int) bool {
			okA, tsA := chatActivityKey(filtered[i])
			okB, tsB := chatActivityKey(filtered[j])
			if okA != okB {
				return okA
			}
			if !tsA.Equal(tsB) {
				return tsA.After(tsB)
			}
			return filtered[i].ChatJID < filtered[j].ChatJID
		})
	case "name":
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := chatNameKey(filtered[i]), chatNameKey(filtered[j])
			if a != b {
				return a < b
			}
			return filtered[i].ChatJID < filtered[j].ChatJID
		})
	}

	total := len(filtered)
	if pageNum < 0 {
		return empty, simerr.InvalidRequest("The requested page number is out of range.")
	}
	if pageNum > 0 && (total == 0 || total <= pageNum*limit) {
		return empty, simerr.InvalidRequest("The requested page number is out of range.")
	}

	start := pageNum * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	chats := make([]ChatSummary, 0, end-start)
	for _, c := range filtered[start:end] {
		item := ChatSummary{
			ChatJID:             c.ChatJID,
			Name:                c.Name,
			IsGroup:             c.IsGroup,
			LastActiveTimestamp: c.LastActiveTimestamp,
			UnreadCount:         c.UnreadCount,
			IsArchived:          c.IsArchived,
			IsPinned:            c.IsPinned,
		}
		if includeLast {
			item.LastMessagePreview = lastMessagePreview(c)
		}
		chats = append(chats, item)
	}

	return ChatsPage{Chats: chats, TotalChats: total, Page: pageNum, Limit: limit}, nil
}

// chatActivityKey orders chats by last activity. Chats with a parsable
// timestamp rank ahead of those without one.
func chatActivityKey(c *model.Chat) (bool, time.Time) {
	if c.LastActiveTimestamp == nil {
		return false, time.Time{}
	}
	ts, ok := parseTimestamp(*c.LastActiveTimestamp)
	if !ok {
		return false, time.Time{}
	}
	return true, ts
}

func chatNameKey(c *model.Chat) string {
	if c.Name == nil {
		return ""
	}
	return strings.ToLower(*c.Name)
}

// lastMessagePreview builds the snippet for the newest message in the
// chat, or nil when the chat is empty or carries unparsable timestamps.
func lastMessagePreview(c *model.Chat) *MessagePreview {
	if len(c.Messages) == 0 {
		return nil
	}
	var last *model.Message
	var lastTS time.Time
	for i := range c.Messages {
		ts, ok := parseTimestamp(c.Messages[i].Timestamp)
		if !ok {
			return nil
		}
		if last == nil || ts.After(lastTS) || ts.Equal(lastTS) {
			last = &c.Messages[i]
			lastTS = ts
		}
	}

	var snippet *string
	switch {
	case last.TextContent != nil && *last.TextContent != "":
		snippet = last.TextContent
	case last.MediaInfo != nil:
		if last.MediaInfo.Caption != nil && *last.MediaInfo.Caption != "" {
			snippet = last.MediaInfo.Caption
		} else {
			placeholder := mediaPlaceholder(last.MediaInfo.MediaType)
			snippet = &placeholder
		}
	}
	if snippet != nil && len(*snippet) > 50 {
		truncated := (*snippet)[:47] + "..."
		snippet = &truncated
	}

	return &MessagePreview{
		MessageID:   last.MessageID,
		TextSnippet: snippet,
		SenderName:  last.SenderName,
		Timestamp:   last.Timestamp,
		IsOutgoing:  last.IsOutgoing,
	}
}

func mediaPlaceholder(mediaType string) string {
	switch mediaType {
	case "image":
		return "Photo"
	case "video":
		return "Video"
	case "audio":
		return "Audio"
	case "document":
		return "Document"
	case "sticker":
		return "Sticker"
	default:
		return "Media"
	}
}

// ChatDetails is the GetChat response.
type ChatDetails struct {
	ChatJID       string               `json:"chat_jid"`
	Name          *string              `json:"name"`
	IsGroup       bool                 `json:"is_group"`
	GroupMetadata *model.GroupMetadata `json:"group_metadata"`
	UnreadCount   *int                 `json:"unread_count"`
	IsArchived    bool                 `json:"is_archived"`
	IsMutedUntil  *string              `json:"is_muted_until"`
	LastMessage   *model.Message       `json:"last_message"`
}

// GetChatParams identifies one chat. IncludeLastMessage defaults to true.
type GetChatParams struct {
	ChatJID            string
	IncludeLastMessage *bool
}

func (s *Service) GetChat(p GetChatParams) (ChatDetails, error) {
	var empty ChatDetails

	if !jidPattern.MatchString(p.ChatJID) {
		return empty, simerr.InvalidRequest("The provided JID has an invalid format.")
	}
	includeLast := true
	if p.IncludeLastMessage != nil {
		includeLast = *p.IncludeLastMessage
	}

	s.store.RLock()
	defer s.store.RUnlock()

	c, ok := s.store.Chats[p.ChatJID]
	if !ok {
		return empty, simerr.NotFound("Chat with JID '%s' not found.", p.ChatJID)
	}

	details := ChatDetails{
		ChatJID:      c.ChatJID,
		Name:         c.Name,
		IsGroup:      c.IsGroup,
		UnreadCount:  c.UnreadCount,
		IsArchived:   c.IsArchived,
		IsMutedUntil: c.IsMutedUntil,
	}
	if c.IsGroup {
		details.GroupMetadata = c.GroupMetadata
	}
	if includeLast && len(c.Messages) > 0 {
		idx := 0
		for i := range c.Messages {
			if c.Messages[i].Timestamp > c.Messages[idx].Timestamp {
				idx = i
			}
		}
		msg := c.Messages[idx]
		details.LastMessage = &msg
	}
	return details, nil
}
