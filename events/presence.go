package events

import (
	"context"

	"github.com/driftcord/driftcord/discord"
)

// PresenceUpdateEvent fires when a member changes their presence in a
// specific guild. A profile change fires once per mutual guild; Old is the
// previously cached presence and is nil when the cache had no prior record.
type PresenceUpdateEvent struct {
	Base

	Old      *discord.Presence
	Presence *discord.Presence

	// User holds only the user fields that changed, nil when the user
	// profile itself did not change.
	User *discord.PartialUser
}

func (e *PresenceUpdateEvent) GuildID() discord.Snowflake {
	return e.Presence.GuildID
}

// UserID is the ID of the user whose presence changed.
func (e *PresenceUpdateEvent) UserID() discord.Snowflake {
	return e.Presence.UserID
}

func (e *PresenceUpdateEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.GuildID())
}

func (e *PresenceUpdateEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.GuildID())
}

// GetUser returns the full cached user, nil when not cached or when the
// application keeps no cache.
func (e *PresenceUpdateEvent) GetUser() *discord.User {
	if !e.App.HasCache() {
		return nil
	}
	return e.App.Cache.GetUser(e.UserID())
}

// FetchUser fetches the user over REST.
func (e *PresenceUpdateEvent) FetchUser(ctx context.Context) (*discord.User, error) {
	return e.App.REST.FetchUser(ctx, e.UserID())
}
