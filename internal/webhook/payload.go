package webhook

import (
	"errors"
	"strings"
)

// ErrEmptyMessage is returned by Build when the message has neither text
// nor embeds. The API rejects such messages, so they never leave the
// client.
var ErrEmptyMessage = errors.New("need content, stdin, or embeds")

// ResolveContent applies the text precedence for an outgoing message:
// piped stdin (trimmed) wins over the --content flag value.
func ResolveContent(stdin, flag string) string {
	if text := strings.TrimSpace(stdin); text != "" {
		return text
	}
	return flag
}

// MessagePayloadBuilder assembles the outgoing message body. Keys are
// added only when their source input is present, so absent inputs never
// appear as null or empty values on the wire.
type MessagePayloadBuilder struct {
	payload map[string]any
}

// NewMessagePayloadBuilder creates an empty MessagePayloadBuilder.
func NewMessagePayloadBuilder() *MessagePayloadBuilder {
	return &MessagePayloadBuilder{payload: make(map[string]any)}
}

// WithContent sets the message text. Empty text is ignored.
func (b *MessagePayloadBuilder) WithContent(text string) *MessagePayloadBuilder {
	if text != "" {
		b.payload["content"] = text
	}
	return b
}

// WithFlags sets the message flag bitfield verbatim.
func (b *MessagePayloadBuilder) WithFlags(flags int) *MessagePayloadBuilder {
	b.payload["flags"] = flags
	return b
}

// WithReplies adds reply references for the given message IDs. Mentions
// are always suppressed. An empty list leaves the key absent.
func (b *MessagePayloadBuilder) WithReplies(ids []string) *MessagePayloadBuilder {
	if len(ids) == 0 {
		return b
	}
	replies := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		replies = append(replies, map[string]any{"id": id, "mention": false})
	}
	b.payload["replies"] = replies
	return b
}

// AddEmbed appends a resolved embed value to the embeds array.
func (b *MessagePayloadBuilder) AddEmbed(value any) *MessagePayloadBuilder {
	embeds, _ := b.payload["embeds"].([]any)
	b.payload["embeds"] = append(embeds, value)
	return b
}

// WithInteractions sets the interactions value.
func (b *MessagePayloadBuilder) WithInteractions(value any) *MessagePayloadBuilder {
	b.payload["interactions"] = value
	return b
}

// WithMasquerade adds a masquerade sub-object when at least one of name
// or avatar is present; each field is included independently.
func (b *MessagePayloadBuilder) WithMasquerade(name, avatar string) *MessagePayloadBuilder {
	if name == "" && avatar == "" {
		return b
	}
	masquerade := make(map[string]any)
	if name != "" {
		masquerade["name"] = name
	}
	if avatar != "" {
		masquerade["avatar"] = avatar
	}
	b.payload["masquerade"] = masquerade
	return b
}

// Build returns the assembled message body. It fails with
// ErrEmptyMessage when the message carries neither content nor embeds.
func (b *MessagePayloadBuilder) Build() (map[string]any, error) {
	_, hasContent := b.payload["content"]
	_, hasEmbeds := b.payload["embeds"]
	if !hasContent && !hasEmbeds {
		return nil, ErrEmptyMessage
	}
	return b.payload, nil
}
