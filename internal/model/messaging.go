package model

// MediaInfo describes an attachment on a chat message.
type MediaInfo struct {
	MediaType          string  `json:"media_type"`
	FileName           *string `json:"file_name"`
	Caption            *string `json:"caption"`
	MimeType           *string `json:"mime_type"`
	SimulatedLocalPath *string `json:"simulated_local_path"`
}

// QuotedMessageInfo links a reply to the message it quotes.
type QuotedMessageInfo struct {
	QuotedMessageID   string  `json:"quoted_message_id"`
	QuotedSenderJID   string  `json:"quoted_sender_jid"`
	QuotedTextPreview *string `json:"quoted_text_preview"`
}

// Message is a single chat message. Timestamps are ISO 8601 strings in
// UTC, matching the wire format of the simulated platform.
type Message struct {
	MessageID         string             `json:"message_id"`
	ChatJID           string             `json:"chat_jid"`
	SenderJID         string             `json:"sender_jid"`
	SenderName        *string            `json:"sender_name"`
	Timestamp         string             `json:"timestamp"`
	TextContent       *string            `json:"text_content"`
	IsOutgoing        bool               `json:"is_outgoing"`
	MediaInfo         *MediaInfo         `json:"media_info"`
	QuotedMessageInfo *QuotedMessageInfo `json:"quoted_message_info"`
	Reaction          *string            `json:"reaction"`
	Status            *string            `json:"status"`
	Forwarded         *bool              `json:"forwarded"`
}

// GroupParticipant is one member of a group chat.
type GroupParticipant struct {
	JID               string  `json:"jid"`
	NameInAddressBook *string `json:"name_in_address_book"`
	ProfileName       *string `json:"profile_name"`
	IsAdmin           bool    `json:"is_admin"`
}

// GroupMetadata holds the group-specific fields of a chat.
type GroupMetadata struct {
	GroupDescription  *string            `json:"group_description"`
	CreationTimestamp *string            `json:"creation_timestamp"`
	OwnerJID          *string            `json:"owner_jid"`
	ParticipantsCount int                `json:"participants_count"`
	Participants      []GroupParticipant `json:"participants"`
}

// Chat is a conversation keyed by JID, holding its messages inline.
type Chat struct {
	ChatJID             string         `json:"chat_jid"`
	Name                *string        `json:"name"`
	IsGroup             bool           `json:"is_group"`
	GroupMetadata       *GroupMetadata `json:"group_metadata"`
	LastActiveTimestamp *string        `json:"last_active_timestamp"`
	UnreadCount         *int           `json:"unread_count"`
	IsArchived          bool           `json:"is_archived"`
	IsPinned            bool           `json:"is_pinned"`
	IsMutedUntil        *string        `json:"is_muted_until"`
	Messages            []Message      `json:"messages"`
}
