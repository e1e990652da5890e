package discord

import (
	"context"
	"time"
)

// MessageType is the type of a message. Unknown wire values are preserved.
type MessageType int

const (
	MessageTypeDefault              MessageType = 0
	MessageTypeRecipientAdd         MessageType = 1
	MessageTypeRecipientRemove      MessageType = 2
	MessageTypeCall                 MessageType = 3
	MessageTypeChannelNameChange    MessageType = 4
	MessageTypeChannelIconChange    MessageType = 5
	MessageTypeChannelPinnedMessage MessageType = 6
	MessageTypeGuildMemberJoin      MessageType = 7
	MessageTypePremiumSubscription  MessageType = 8
	MessageTypeChannelFollowAdd     MessageType = 12
	MessageTypeReply                MessageType = 19
	MessageTypeChatInput            MessageType = 20
	MessageTypeGuildInviteReminder  MessageType = 22
	MessageTypeContextMenuCommand   MessageType = 23
)

// MessageFlag is a bitmask of additional message options. Unknown bits pass
// through unchanged.
type MessageFlag int

const (
	MessageFlagCrossposted          MessageFlag = 1 << 0
	MessageFlagIsCrosspost          MessageFlag = 1 << 1
	MessageFlagSuppressEmbeds       MessageFlag = 1 << 2
	MessageFlagSourceMessageDeleted MessageFlag = 1 << 3
	MessageFlagUrgent               MessageFlag = 1 << 4
	MessageFlagEphemeral            MessageFlag = 1 << 6
	MessageFlagLoading              MessageFlag = 1 << 7
)

// Has reports whether all bits in flag are set.
func (f MessageFlag) Has(flag MessageFlag) bool {
	return f&flag == flag
}

// MessageActivityType is the type of a rich presence message activity.
type MessageActivityType int

const (
	MessageActivityTypeNone        MessageActivityType = 0
	MessageActivityTypeJoin        MessageActivityType = 1
	MessageActivityTypeSpectate    MessageActivityType = 2
	MessageActivityTypeListen      MessageActivityType = 3
	MessageActivityTypeJoinRequest MessageActivityType = 5
)

// InteractionType is the type of the interaction a message was created by.
type InteractionType int

const (
	InteractionTypePing               InteractionType = 1
	InteractionTypeApplicationCommand InteractionType = 2
	InteractionTypeMessageComponent   InteractionType = 3
)

// Attachment is a file attached to a message. It lives and dies with its
// owning message.
type Attachment struct {
	ID       Snowflake `json:"id"`
	URL      string    `json:"url"`
	ProxyURL string    `json:"proxy_url,omitzero"`
	Filename string    `json:"filename"`
	// MediaType is the MIME type, when Discord reports one.
	MediaType string `json:"content_type,omitzero"`
	Size      int    `json:"size"`
	Height    int    `json:"height,omitzero"`
	Width     int    `json:"width,omitzero"`
}

// Reaction is an aggregated reaction on a message. Count and Me change on
// Discord's side without the message identity changing, so equality between
// reactions is by emoji only.
type Reaction struct {
	Count int   `json:"count"`
	Emoji Emoji `json:"emoji"`
	// Me is whether the current user reacted with this emoji.
	Me bool `json:"me"`
}

// Equal reports whether both reactions are for the same emoji, ignoring
// the volatile count and me fields.
func (r Reaction) Equal(other Reaction) bool {
	return r.Emoji.ID == other.Emoji.ID && r.Emoji.Name == other.Emoji.Name
}

// MessageActivity is the activity of a rich presence-enabled message.
type MessageActivity struct {
	Type    MessageActivityType `json:"type"`
	PartyID string              `json:"party_id,omitzero"`
}

// MessageReference points at the message a crosspost, channel follow add,
// pin or reply originates from.
type MessageReference struct {
	// MessageID is nil for channel follow add messages, and may point to
	// a deleted message.
	MessageID *Snowflake `json:"message_id,omitzero"`
	ChannelID Snowflake  `json:"channel_id"`
	// GuildID is nil when the original message is not from a guild.
	GuildID *Snowflake `json:"guild_id,omitzero"`
}

// MessageInteraction describes the interaction a message was sent in
// response to.
type MessageInteraction struct {
	ID   Snowflake       `json:"id"`
	Type InteractionType `json:"type"`
	Name string          `json:"name"`
	User User            `json:"user"`
}

// Sticker is the reduced sticker shape attached to messages.
type Sticker struct {
	ID         Snowflake `json:"id"`
	Name       string    `json:"name"`
	FormatType int       `json:"format_type,omitzero"`
}

// Embed is a rich embed. Only the fields this layer needs; embed building
// is left to callers.
type Embed struct {
	Title       string `json:"title,omitzero"`
	Description string `json:"description,omitzero"`
	URL         string `json:"url,omitzero"`
	Color       int    `json:"color,omitzero"`
}

// PartialMessage is a message with partially populated information, as
// found in update payloads. Only ID and ChannelID are guaranteed; every
// other field distinguishes undefined (Discord didn't tell us) from null
// (Discord told us it's gone) from a value.
//
// Like all gateway entities it is an immutable snapshot: constructed once
// at decode time and never mutated afterwards.
type PartialMessage struct {
	// App supplies the capabilities the accessor methods resolve through.
	App *App `json:"-"`

	ID        Snowflake `json:"id"`
	ChannelID Snowflake `json:"channel_id"`
	// GuildID is nil for messages outside guilds, and for messages
	// fetched over REST (Discord does not include it there).
	GuildID *Snowflake `json:"guild_id,omitzero"`

	Author          UndefinedOr[User]                `json:"author,omitzero"`
	Member          UndefinedOr[*Member]             `json:"member,omitzero"`
	Content         UndefinedOr[string]              `json:"content,omitzero"`
	Timestamp       UndefinedOr[time.Time]           `json:"timestamp,omitzero"`
	EditedTimestamp UndefinedOr[time.Time]           `json:"edited_timestamp,omitzero"`
	TTS             UndefinedOr[bool]                `json:"tts,omitzero"`
	Mentions        *Mentions                        `json:"-"`
	Attachments     UndefinedOr[[]Attachment]        `json:"attachments,omitzero"`
	Embeds          UndefinedOr[[]Embed]             `json:"embeds,omitzero"`
	Reactions       UndefinedOr[[]Reaction]          `json:"reactions,omitzero"`
	Pinned          UndefinedOr[bool]                `json:"pinned,omitzero"`
	WebhookID       UndefinedOr[Snowflake]           `json:"webhook_id,omitzero"`
	Type            UndefinedOr[MessageType]         `json:"type,omitzero"`
	Activity        UndefinedOr[*MessageActivity]    `json:"activity,omitzero"`
	Application     UndefinedOr[*MessageApplication] `json:"application,omitzero"`
	Reference       UndefinedOr[*MessageReference]   `json:"message_reference,omitzero"`
	Flags           UndefinedOr[MessageFlag]         `json:"flags,omitzero"`
	Stickers        UndefinedOr[[]Sticker]           `json:"sticker_items,omitzero"`
	Nonce           UndefinedOr[string]              `json:"nonce,omitzero"`
	// ReferencedMessage is the replied-to message. Undefined means
	// Discord's backend did not attempt to fetch it; null means it was
	// deleted.
	ReferencedMessage UndefinedOr[*Message]            `json:"referenced_message,omitzero"`
	Interaction       UndefinedOr[*MessageInteraction] `json:"interaction,omitzero"`
	ApplicationID     UndefinedOr[Snowflake]           `json:"application_id,omitzero"`
	Components        UndefinedOr[Components]          `json:"components,omitzero"`
}

// MakeLink builds a client jump link to this message. guildID is the guild
// the message lives in, or nil for a DM link; it has to be passed in
// because REST message payloads never include the guild ID.
func (m *PartialMessage) MakeLink(guildID *Snowflake) string {
	guildPart := "@me"
	if guildID != nil {
		guildPart = guildID.String()
	}
	return EndpointMessageLink(guildPart, m.ChannelID, m.ID)
}

// FetchChannel fetches the channel this message was created in.
func (m *PartialMessage) FetchChannel(ctx context.Context) (*PartialChannel, error) {
	return m.App.REST.FetchChannel(ctx, m.ChannelID)
}

// Respond creates a new message in this message's channel. The Reply field
// on params resolves against this message: ReplySelf targets this message,
// ReplyNone sends a standalone message.
func (m *PartialMessage) Respond(ctx context.Context, reply MessageReply, params CreateMessageParams) (*Message, error) {
	params.Reply = reply.resolve(m.ID)
	return m.App.REST.CreateMessage(ctx, m.ChannelID, params)
}

// Edit edits this message. All four mention controls in params are
// forwarded unconditionally; see EditMessageParams for the re-parsing
// contract the REST layer enforces.
func (m *PartialMessage) Edit(ctx context.Context, params EditMessageParams) (*Message, error) {
	return m.App.REST.EditMessage(ctx, m.ChannelID, m.ID, params)
}

// Delete deletes this message.
func (m *PartialMessage) Delete(ctx context.Context) error {
	return m.App.REST.DeleteMessage(ctx, m.ChannelID, m.ID)
}

// AddReaction adds a reaction to this message. Use UnicodeEmoji or
// CustomEmoji to build the emoji argument.
func (m *PartialMessage) AddReaction(ctx context.Context, emoji ReactionEmoji) error {
	if err := emoji.Validate(); err != nil {
		return err
	}
	return m.App.REST.AddReaction(ctx, m.ChannelID, m.ID, emoji)
}

// RemoveReaction removes a single reaction. A nil user targets the bot's
// own reaction, not all reactions for the emoji.
func (m *PartialMessage) RemoveReaction(ctx context.Context, emoji ReactionEmoji, user *Snowflake) error {
	if err := emoji.Validate(); err != nil {
		return err
	}
	if user == nil {
		return m.App.REST.DeleteOwnReaction(ctx, m.ChannelID, m.ID, emoji)
	}
	return m.App.REST.DeleteReaction(ctx, m.ChannelID, m.ID, emoji, *user)
}

// RemoveAllReactions removes every reaction for the given emoji, or every
// reaction on the message when emoji is nil.
func (m *PartialMessage) RemoveAllReactions(ctx context.Context, emoji *ReactionEmoji) error {
	if emoji == nil {
		return m.App.REST.DeleteAllReactions(ctx, m.ChannelID, m.ID)
	}
	if err := emoji.Validate(); err != nil {
		return err
	}
	return m.App.REST.DeleteAllReactionsForEmoji(ctx, m.ChannelID, m.ID, *emoji)
}

// Message is a message with all known details. It carries the same field
// set as PartialMessage with everything required; pointers mark the fields
// that are nullable on the wire.
type Message struct {
	App *App `json:"-"`

	ID        Snowflake  `json:"id"`
	ChannelID Snowflake  `json:"channel_id"`
	GuildID   *Snowflake `json:"guild_id,omitzero"`

	Author            User                `json:"author"`
	Member            *Member             `json:"member,omitzero"`
	Content           string              `json:"content"`
	Timestamp         time.Time           `json:"timestamp"`
	EditedTimestamp   *time.Time          `json:"edited_timestamp,omitzero"`
	TTS               bool                `json:"tts"`
	Mentions          *Mentions           `json:"-"`
	Attachments       []Attachment        `json:"attachments"`
	Embeds            []Embed             `json:"embeds"`
	Reactions         []Reaction          `json:"reactions,omitzero"`
	Pinned            bool                `json:"pinned"`
	WebhookID         *Snowflake          `json:"webhook_id,omitzero"`
	Type              MessageType         `json:"type"`
	Activity          *MessageActivity    `json:"activity,omitzero"`
	Application       *MessageApplication `json:"application,omitzero"`
	Reference         *MessageReference   `json:"message_reference,omitzero"`
	Flags             MessageFlag         `json:"flags,omitzero"`
	Stickers          []Sticker           `json:"sticker_items,omitzero"`
	Nonce             string              `json:"nonce,omitzero"`
	ReferencedMessage *Message            `json:"referenced_message,omitzero"`
	Interaction       *MessageInteraction `json:"interaction,omitzero"`
	ApplicationID     *Snowflake          `json:"application_id,omitzero"`
	Components        Components          `json:"components,omitzero"`
}

// Partial returns the partial-message view of this message, sharing the
// same identity and capabilities. Mutator and accessor methods live on
// PartialMessage; the view is cheap and carries everything they need.
func (m *Message) Partial() *PartialMessage {
	return &PartialMessage{
		App:       m.App,
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Mentions:  m.Mentions,
	}
}

// Respond creates a new message in this message's channel.
func (m *Message) Respond(ctx context.Context, reply MessageReply, params CreateMessageParams) (*Message, error) {
	return m.Partial().Respond(ctx, reply, params)
}

// Edit edits this message.
func (m *Message) Edit(ctx context.Context, params EditMessageParams) (*Message, error) {
	return m.Partial().Edit(ctx, params)
}

// Delete deletes this message.
func (m *Message) Delete(ctx context.Context) error {
	return m.Partial().Delete(ctx)
}

// AddReaction adds a reaction to this message.
func (m *Message) AddReaction(ctx context.Context, emoji ReactionEmoji) error {
	return m.Partial().AddReaction(ctx, emoji)
}

// RemoveReaction removes a single reaction; nil user targets the bot's own.
func (m *Message) RemoveReaction(ctx context.Context, emoji ReactionEmoji, user *Snowflake) error {
	return m.Partial().RemoveReaction(ctx, emoji, user)
}

// RemoveAllReactions removes reactions for one emoji, or all when nil.
func (m *Message) RemoveAllReactions(ctx context.Context, emoji *ReactionEmoji) error {
	return m.Partial().RemoveAllReactions(ctx, emoji)
}

// FetchChannel fetches the channel this message was created in.
func (m *Message) FetchChannel(ctx context.Context) (*PartialChannel, error) {
	return m.Partial().FetchChannel(ctx)
}

// MakeLink builds a client jump link to this message.
func (m *Message) MakeLink(guildID *Snowflake) string {
	return m.Partial().MakeLink(guildID)
}
