package discord

import (
	"context"

	"emperror.dev/errors"
)

// REST is the asynchronous network capability. Calls block only the calling
// goroutine, honour ctx cancellation, and surface failures as *RESTError
// (or a transport error) without retrying here; retry and backoff belong to
// the implementation.
type REST interface {
	FetchGuild(ctx context.Context, guildID Snowflake) (*Guild, error)
	FetchGuildPreview(ctx context.Context, guildID Snowflake) (*GuildPreview, error)
	FetchGuildEmojis(ctx context.Context, guildID Snowflake) ([]Emoji, error)
	FetchUser(ctx context.Context, userID Snowflake) (*User, error)
	FetchBan(ctx context.Context, guildID, userID Snowflake) (*GuildBan, error)
	FetchIntegrations(ctx context.Context, guildID Snowflake) ([]Integration, error)
	FetchChannel(ctx context.Context, channelID Snowflake) (*PartialChannel, error)

	CreateMessage(ctx context.Context, channelID Snowflake, params CreateMessageParams) (*Message, error)
	EditMessage(ctx context.Context, channelID, messageID Snowflake, params EditMessageParams) (*Message, error)
	DeleteMessage(ctx context.Context, channelID, messageID Snowflake) error

	AddReaction(ctx context.Context, channelID, messageID Snowflake, emoji ReactionEmoji) error
	DeleteReaction(ctx context.Context, channelID, messageID Snowflake, emoji ReactionEmoji, userID Snowflake) error
	DeleteOwnReaction(ctx context.Context, channelID, messageID Snowflake, emoji ReactionEmoji) error
	DeleteAllReactions(ctx context.Context, channelID, messageID Snowflake) error
	DeleteAllReactionsForEmoji(ctx context.Context, channelID, messageID Snowflake, emoji ReactionEmoji) error
}

// ReactionEmoji identifies an emoji for reaction endpoints. It covers both
// input shapes: a plain unicode emoji, or a custom emoji's name plus ID.
type ReactionEmoji struct {
	Name string
	ID   Snowflake
}

// UnicodeEmoji builds a ReactionEmoji from a unicode emoji literal.
func UnicodeEmoji(name string) ReactionEmoji {
	return ReactionEmoji{Name: name}
}

// CustomEmoji builds a ReactionEmoji from a custom emoji's name and ID.
func CustomEmoji(name string, id Snowflake) ReactionEmoji {
	return ReactionEmoji{Name: name, ID: id}
}

// APIName returns the name:id form reaction endpoints expect, or the bare
// literal for unicode emojis.
func (e ReactionEmoji) APIName() string {
	if e.ID == 0 {
		return e.Name
	}
	return e.Name + ":" + e.ID.String()
}

// Validate checks the emoji has at least a name. Done locally before any
// network call.
func (e ReactionEmoji) Validate() error {
	if e.Name == "" {
		return errors.WithMessage(ErrInvalidArgument, "reaction emoji name must not be empty")
	}
	return nil
}

// MessageReply is the tri-state reply target for Respond: no reply,
// reply-to-self, or reply to a specific message.
type MessageReply struct {
	set    bool
	self   bool
	target Snowflake
}

// ReplyNone is explicit absence: the created message is not a reply.
func ReplyNone() MessageReply { return MessageReply{} }

// ReplySelf replies to the message Respond is called on.
func ReplySelf() MessageReply { return MessageReply{set: true, self: true} }

// ReplyTo replies to the given message.
func ReplyTo(id Snowflake) MessageReply { return MessageReply{set: true, target: id} }

// resolve collapses the reply into the referenced message ID. self is the
// ID of the message the caller is responding from.
func (r MessageReply) resolve(self Snowflake) UndefinedOr[Snowflake] {
	switch {
	case !r.set:
		return None[Snowflake]()
	case r.self:
		return Some(self)
	default:
		return Some(r.target)
	}
}

// CreateMessageParams is the input to REST.CreateMessage. Undefined fields
// are not sent.
type CreateMessageParams struct {
	Content     UndefinedOr[string]       `json:"content,omitzero"`
	TTS         UndefinedOr[bool]         `json:"tts,omitzero"`
	Nonce       UndefinedOr[string]       `json:"nonce,omitzero"`
	Embeds      UndefinedOr[[]Embed]      `json:"embeds,omitzero"`
	Components  UndefinedOr[Components]   `json:"components,omitzero"`
	Attachments UndefinedOr[[]Attachment] `json:"attachments,omitzero"`

	// Reply is resolved by PartialMessage.Respond before the request is
	// issued.
	Reply UndefinedOr[Snowflake] `json:"-"`

	// Mention controls. All four are always forwarded, even when
	// undefined, so the REST layer can apply Discord's restrictive
	// defaults consistently.
	MentionsEveryone UndefinedOr[bool]        `json:"mentions_everyone,omitzero"`
	MentionsReply    UndefinedOr[bool]        `json:"mentions_reply,omitzero"`
	UserMentions     UndefinedOr[[]Snowflake] `json:"user_mentions,omitzero"`
	RoleMentions     UndefinedOr[[]Snowflake] `json:"role_mentions,omitzero"`
}

// EditMessageParams is the input to REST.EditMessage.
//
// If Content is set to a non-embed value, Discord re-parses the message for
// mentions and resets the mention-parsing flags to restrictive defaults
// unless they are re-specified. Enforcing that contract is the REST layer's
// job; this layer only guarantees all four mention controls are forwarded
// unconditionally.
type EditMessageParams struct {
	Content     UndefinedOr[string]       `json:"content,omitzero"`
	Embeds      UndefinedOr[[]Embed]      `json:"embeds,omitzero"`
	Components  UndefinedOr[Components]   `json:"components,omitzero"`
	Attachments UndefinedOr[[]Attachment] `json:"attachments,omitzero"`
	Flags       UndefinedOr[MessageFlag]  `json:"flags,omitzero"`

	MentionsEveryone UndefinedOr[bool]        `json:"mentions_everyone,omitzero"`
	MentionsReply    UndefinedOr[bool]        `json:"mentions_reply,omitzero"`
	UserMentions     UndefinedOr[[]Snowflake] `json:"user_mentions,omitzero"`
	RoleMentions     UndefinedOr[[]Snowflake] `json:"role_mentions,omitzero"`
}
