// Package events defines the typed records the dispatch layer hands to
// application handlers, one per gateway payload. Every event is an
// immutable snapshot: handlers may run concurrently and all observe the
// same value.
//
// Events expose two distinct resolution strategies that are never
// conflated: Get* methods read the injected cache capability and return
// immediately (nil or empty on a miss, or when the application keeps no
// cache at all), while Fetch* methods go through the REST capability,
// suspend only the calling goroutine, and never take a cached shortcut.
package events

import (
	"context"

	"github.com/driftcord/driftcord/discord"
)

// Event is any gateway event.
type Event interface {
	// EventApp returns the capability context the event was constructed
	// with.
	EventApp() *discord.App
	// EventShard is the gateway connection the event arrived on.
	EventShard() discord.Shard
}

// GuildEvent is any event bound to a single guild.
type GuildEvent interface {
	Event
	GuildID() discord.Snowflake
}

// Base carries the context shared by every event: the application
// capabilities and the originating shard. It is embedded by value in each
// event record.
type Base struct {
	App   *discord.App
	Shard discord.Shard
}

func (b Base) EventApp() *discord.App    { return b.App }
func (b Base) EventShard() discord.Shard { return b.Shard }

// getGuild is the shared cache path for guild-bound events: available
// first, then unavailable, nil when uncached or when there is no cache.
func getGuild(app *discord.App, guildID discord.Snowflake) *discord.Guild {
	if !app.HasCache() {
		return nil
	}
	if g := app.Cache.GetAvailableGuild(guildID); g != nil {
		return g
	}
	return app.Cache.GetUnavailableGuild(guildID)
}

func fetchGuild(ctx context.Context, app *discord.App, guildID discord.Snowflake) (*discord.Guild, error) {
	return app.REST.FetchGuild(ctx, guildID)
}

func fetchGuildPreview(ctx context.Context, app *discord.App, guildID discord.Snowflake) (*discord.GuildPreview, error) {
	return app.REST.FetchGuildPreview(ctx, guildID)
}
