package events

import (
	"context"

	"emperror.dev/errors"

	"github.com/driftcord/driftcord/discord"
)

// GuildAvailableEvent fires when a guild becomes available: on startup,
// after an outage, or when the bot joins a new guild. This is the initial
// sync shape, so it carries the nested entity mappings the other guild
// events do not.
type GuildAvailableEvent struct {
	Base

	Guild *discord.Guild

	// ID-keyed mappings of the guild's nested entities. Insertion order
	// is irrelevant.
	Emojis      map[discord.Snowflake]*discord.Emoji
	Roles       map[discord.Snowflake]*discord.Role
	Channels    map[discord.Snowflake]*discord.GuildChannel
	Members     map[discord.Snowflake]*discord.Member
	Presences   map[discord.Snowflake]*discord.Presence
	VoiceStates map[discord.Snowflake]*discord.VoiceState

	// ChunkNonce is the nonce used to request member chunks for this
	// guild, empty if none were requested.
	ChunkNonce string
}

func (e *GuildAvailableEvent) GuildID() discord.Snowflake {
	return e.Guild.ID
}

// GetGuild returns the cached guild, nil if not cached.
func (e *GuildAvailableEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.GuildID())
}

// FetchGuild fetches the guild over REST.
func (e *GuildAvailableEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.GuildID())
}

// FetchGuildPreview fetches the guild's public preview over REST.
func (e *GuildAvailableEvent) FetchGuildPreview(ctx context.Context) (*discord.GuildPreview, error) {
	return fetchGuildPreview(ctx, e.App, e.GuildID())
}

// GuildUpdateEvent fires when an existing guild is updated. Old is the
// previously cached guild and is nil when the cache had no prior record —
// a valid first-sighting state, not an error.
type GuildUpdateEvent struct {
	Base

	Old   *discord.Guild
	Guild *discord.Guild

	Emojis map[discord.Snowflake]*discord.Emoji
	Roles  map[discord.Snowflake]*discord.Role
}

func (e *GuildUpdateEvent) GuildID() discord.Snowflake {
	return e.Guild.ID
}

func (e *GuildUpdateEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.GuildID())
}

func (e *GuildUpdateEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.GuildID())
}

func (e *GuildUpdateEvent) FetchGuildPreview(ctx context.Context) (*discord.GuildPreview, error) {
	return fetchGuildPreview(ctx, e.App, e.GuildID())
}

// GuildUnavailableEvent fires when a guild goes unavailable because of an
// outage. Only the ID survives; the entity itself is gone from upstream.
type GuildUnavailableEvent struct {
	Base

	ID discord.Snowflake
}

func (e *GuildUnavailableEvent) GuildID() discord.Snowflake {
	return e.ID
}

func (e *GuildUnavailableEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.ID)
}

func (e *GuildUnavailableEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.ID)
}

// GuildLeaveEvent fires when the bot is kicked or banned from a guild,
// leaves it, or the guild is deleted. Old is the previously cached guild,
// nil when it was missing from the cache.
type GuildLeaveEvent struct {
	Base

	ID  discord.Snowflake
	Old *discord.Guild
}

func (e *GuildLeaveEvent) GuildID() discord.Snowflake {
	return e.ID
}

func (e *GuildLeaveEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.ID)
}

// FetchGuild always fails with discord.ErrUnreachableOperation: once the
// bot has left, the API rejects the fetch, so the call is never attempted.
func (e *GuildLeaveEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return nil, errors.WithMessage(discord.ErrUnreachableOperation, "cannot fetch a guild the bot has left")
}

// EmojisUpdateEvent fires when the emojis of a guild change. Old is the
// previously cached emoji list, nil when the cache had none.
type EmojisUpdateEvent struct {
	Base

	ID     discord.Snowflake
	Old    []*discord.Emoji
	Emojis []*discord.Emoji
}

func (e *EmojisUpdateEvent) GuildID() discord.Snowflake {
	return e.ID
}

func (e *EmojisUpdateEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.ID)
}

func (e *EmojisUpdateEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.ID)
}

// FetchEmojis retrieves an up-to-date view of the guild's emojis.
func (e *EmojisUpdateEvent) FetchEmojis(ctx context.Context) ([]discord.Emoji, error) {
	return e.App.REST.FetchGuildEmojis(ctx, e.ID)
}
