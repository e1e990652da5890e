package events

import (
	"context"

	"github.com/driftcord/driftcord/discord"
)

// IntegrationEvent is the shared surface of integration events.
type IntegrationEvent interface {
	GuildEvent
	// IntegrationID is the ID of the integration the event concerns.
	IntegrationID() discord.Snowflake
	// ApplicationID is the bot application bound to the integration,
	// nil for non-discord integrations.
	ApplicationID() *discord.Snowflake
}

// IntegrationCreateEvent fires when an integration is created in a guild.
type IntegrationCreateEvent struct {
	Base

	Integration *discord.Integration
}

func (e *IntegrationCreateEvent) GuildID() discord.Snowflake {
	return e.Integration.GuildID
}

func (e *IntegrationCreateEvent) IntegrationID() discord.Snowflake {
	return e.Integration.ID
}

func (e *IntegrationCreateEvent) ApplicationID() *discord.Snowflake {
	return integrationApplicationID(e.Integration)
}

func (e *IntegrationCreateEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.GuildID())
}

func (e *IntegrationCreateEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.GuildID())
}

// FetchIntegrations fetches the guild's integrations over REST. Discord
// only returns an ill-defined subset (the first 50 or so).
func (e *IntegrationCreateEvent) FetchIntegrations(ctx context.Context) ([]discord.Integration, error) {
	return e.App.REST.FetchIntegrations(ctx, e.GuildID())
}

// IntegrationUpdateEvent fires when an integration is updated in a guild.
type IntegrationUpdateEvent struct {
	Base

	Integration *discord.Integration
}

func (e *IntegrationUpdateEvent) GuildID() discord.Snowflake {
	return e.Integration.GuildID
}

func (e *IntegrationUpdateEvent) IntegrationID() discord.Snowflake {
	return e.Integration.ID
}

func (e *IntegrationUpdateEvent) ApplicationID() *discord.Snowflake {
	return integrationApplicationID(e.Integration)
}

func (e *IntegrationUpdateEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.GuildID())
}

func (e *IntegrationUpdateEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.GuildID())
}

func (e *IntegrationUpdateEvent) FetchIntegrations(ctx context.Context) ([]discord.Integration, error) {
	return e.App.REST.FetchIntegrations(ctx, e.GuildID())
}

// IntegrationDeleteEvent fires when an integration is deleted. The entity
// is gone, so only the IDs survive.
type IntegrationDeleteEvent struct {
	Base

	ID    discord.Snowflake
	Guild discord.Snowflake
	AppID *discord.Snowflake
}

func (e *IntegrationDeleteEvent) GuildID() discord.Snowflake {
	return e.Guild
}

func (e *IntegrationDeleteEvent) IntegrationID() discord.Snowflake {
	return e.ID
}

func (e *IntegrationDeleteEvent) ApplicationID() *discord.Snowflake {
	return e.AppID
}

func (e *IntegrationDeleteEvent) GetGuild() *discord.Guild {
	return getGuild(e.App, e.Guild)
}

func (e *IntegrationDeleteEvent) FetchGuild(ctx context.Context) (*discord.Guild, error) {
	return fetchGuild(ctx, e.App, e.Guild)
}

func (e *IntegrationDeleteEvent) FetchIntegrations(ctx context.Context) ([]discord.Integration, error) {
	return e.App.REST.FetchIntegrations(ctx, e.Guild)
}

func integrationApplicationID(integration *discord.Integration) *discord.Snowflake {
	if integration.Application == nil {
		return nil
	}
	id := integration.Application.ID
	return &id
}
