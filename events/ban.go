package events

import (
	"context"

	"github.com/driftcord/driftcord/discord"
)

// BanEvent is the shared surface of ban and unban events.
type BanEvent interface {
	GuildEvent
	UserID() discord.Snowflake
}

// BanCreateEvent fires when a user is banned from a guild.
type BanCreateEvent struct {
	Base

	ID   discord.Snowflake
	User *discord.User
}

func (e *BanCreateEvent) GuildID() discord.Snowflake {
	return e.ID
}

// UserID is the ID of the banned user.
func (e *BanCreateEvent) UserID() discord.Snowflake {
	return e.User.ID
}

func (e *BanCreateEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.ID)
}

func (e *BanCreateEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.ID)
}

// FetchUser fetches the banned user over REST.
func (e *BanCreateEvent) FetchUser(ctx context.Context) (*discord.User, error) {
	return e.App.REST.FetchUser(ctx, e.UserID())
}

// FetchBan fetches the ban detail, including the audit log reason if one
// was given.
func (e *BanCreateEvent) FetchBan(ctx context.Context) (*discord.GuildBan, error) {
	return e.App.REST.FetchBan(ctx, e.ID, e.UserID())
}

// BanDeleteEvent fires when a user is unbanned from a guild. There is no
// FetchBan here: the ban no longer exists once it has been lifted.
type BanDeleteEvent struct {
	Base

	ID   discord.Snowflake
	User *discord.User
}

func (e *BanDeleteEvent) GuildID() discord.Snowflake {
	return e.ID
}

// UserID is the ID of the unbanned user.
func (e *BanDeleteEvent) UserID() discord.Snowflake {
	return e.User.ID
}

func (e *BanDeleteEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.ID)
}

func (e *BanDeleteEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.ID)
}

// FetchUser fetches the unbanned user over REST.
func (e *BanDeleteEvent) FetchUser(ctx context.Context) (*discord.User, error) {
	return e.App.REST.FetchUser(ctx, e.UserID())
}
