package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcord/driftcord/discord"
)

// recordingREST implements discord.REST, logging calls and honouring ctx
// cancellation the way a real transport would.
type recordingREST struct {
	calls []string
}

func (r *recordingREST) record(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.calls = append(r.calls, name)
	return nil
}

func (r *recordingREST) FetchGuild(ctx context.Context, guildID discord.Snowflake) (*discord.Guild, error) {
	if err := r.record(ctx, "FetchGuild"); err != nil {
		return nil, err
	}
	return &discord.Guild{ID: guildID, Name: "fetched"}, nil
}

func (r *recordingREST) FetchGuildPreview(ctx context.Context, guildID discord.Snowflake) (*discord.GuildPreview, error) {
	if err := r.record(ctx, "FetchGuildPreview"); err != nil {
		return nil, err
	}
	return &discord.GuildPreview{ID: guildID}, nil
}

func (r *recordingREST) FetchGuildEmojis(ctx context.Context, guildID discord.Snowflake) ([]discord.Emoji, error) {
	if err := r.record(ctx, "FetchGuildEmojis"); err != nil {
		return nil, err
	}
	return []discord.Emoji{{ID: 5, Name: "pog"}}, nil
}

func (r *recordingREST) FetchUser(ctx context.Context, userID discord.Snowflake) (*discord.User, error) {
	if err := r.record(ctx, "FetchUser"); err != nil {
		return nil, err
	}
	return &discord.User{ID: userID, Username: "fetched"}, nil
}

func (r *recordingREST) FetchBan(ctx context.Context, guildID, userID discord.Snowflake) (*discord.GuildBan, error) {
	if err := r.record(ctx, "FetchBan"); err != nil {
		return nil, err
	}
	return &discord.GuildBan{Reason: "spam", User: discord.User{ID: userID}}, nil
}

func (r *recordingREST) FetchIntegrations(ctx context.Context, guildID discord.Snowflake) ([]discord.Integration, error) {
	if err := r.record(ctx, "FetchIntegrations"); err != nil {
		return nil, err
	}
	return []discord.Integration{{ID: 9, GuildID: guildID}}, nil
}

func (r *recordingREST) FetchChannel(ctx context.Context, channelID discord.Snowflake) (*discord.PartialChannel, error) {
	if err := r.record(ctx, "FetchChannel"); err != nil {
		return nil, err
	}
	return &discord.PartialChannel{ID: channelID}, nil
}

func (r *recordingREST) CreateMessage(ctx context.Context, channelID discord.Snowflake, params discord.CreateMessageParams) (*discord.Message, error) {
	if err := r.record(ctx, "CreateMessage"); err != nil {
		return nil, err
	}
	return &discord.Message{ID: 1, ChannelID: channelID}, nil
}

func (r *recordingREST) EditMessage(ctx context.Context, channelID, messageID discord.Snowflake, params discord.EditMessageParams) (*discord.Message, error) {
	if err := r.record(ctx, "EditMessage"); err != nil {
		return nil, err
	}
	return &discord.Message{ID: messageID, ChannelID: channelID}, nil
}

func (r *recordingREST) DeleteMessage(ctx context.Context, channelID, messageID discord.Snowflake) error {
	return r.record(ctx, "DeleteMessage")
}

func (r *recordingREST) AddReaction(ctx context.Context, channelID, messageID discord.Snowflake, emoji discord.ReactionEmoji) error {
	return r.record(ctx, "AddReaction")
}

func (r *recordingREST) DeleteReaction(ctx context.Context, channelID, messageID discord.Snowflake, emoji discord.ReactionEmoji, userID discord.Snowflake) error {
	return r.record(ctx, "DeleteReaction")
}

func (r *recordingREST) DeleteOwnReaction(ctx context.Context, channelID, messageID discord.Snowflake, emoji discord.ReactionEmoji) error {
	return r.record(ctx, "DeleteOwnReaction")
}

func (r *recordingREST) DeleteAllReactions(ctx context.Context, channelID, messageID discord.Snowflake) error {
	return r.record(ctx, "DeleteAllReactions")
}

func (r *recordingREST) DeleteAllReactionsForEmoji(ctx context.Context, channelID, messageID discord.Snowflake, emoji discord.ReactionEmoji) error {
	return r.record(ctx, "DeleteAllReactionsForEmoji")
}

// recordingCache implements discord.Cache over plain maps, logging calls.
type recordingCache struct {
	calls []string

	guilds map[discord.Snowflake]*discord.Guild
	users  map[discord.Snowflake]*discord.User
}

func (c *recordingCache) GetAvailableGuild(id discord.Snowflake) *discord.Guild {
	c.calls = append(c.calls, "GetAvailableGuild")
	if g := c.guilds[id]; g != nil && !g.Unavailable {
		return g
	}
	return nil
}

func (c *recordingCache) GetUnavailableGuild(id discord.Snowflake) *discord.Guild {
	c.calls = append(c.calls, "GetUnavailableGuild")
	if g := c.guilds[id]; g != nil && g.Unavailable {
		return g
	}
	return nil
}

func (c *recordingCache) GetUser(id discord.Snowflake) *discord.User {
	c.calls = append(c.calls, "GetUser")
	return c.users[id]
}

func (c *recordingCache) GetMember(guildID, userID discord.Snowflake) *discord.Member {
	c.calls = append(c.calls, "GetMember")
	return nil
}

func (c *recordingCache) GetRole(id discord.Snowflake) *discord.Role {
	c.calls = append(c.calls, "GetRole")
	return nil
}

type testShard int

func (s testShard) ID() int { return int(s) }

func testApp(rest discord.REST, cache discord.Cache) *discord.App {
	return &discord.App{REST: rest, Cache: cache}
}

// Get accessors must be pure cache reads: no REST traffic, no blocking.
func TestGetGuildNeverTouchesREST(t *testing.T) {
	rest := &recordingREST{}
	cache := &recordingCache{guilds: map[discord.Snowflake]*discord.Guild{
		700: {ID: 700, Name: "cached"},
	}}
	evt := &GuildUpdateEvent{
		Base:  Base{App: testApp(rest, cache), Shard: testShard(0)},
		Guild: &discord.Guild{ID: 700},
	}

	got := evt.GetGuild()
	require.NotNil(t, got)
	assert.Equal(t, "cached", got.Name)
	assert.Empty(t, rest.calls, "Get accessors must not consult REST")
}

// Fetch accessors must go to REST even when the cache has an answer.
func TestFetchGuildNeverConsultsCache(t *testing.T) {
	rest := &recordingREST{}
	cache := &recordingCache{guilds: map[discord.Snowflake]*discord.Guild{
		700: {ID: 700, Name: "cached"},
	}}
	evt := &GuildUpdateEvent{
		Base:  Base{App: testApp(rest, cache), Shard: testShard(0)},
		Guild: &discord.Guild{ID: 700},
	}

	got, err := evt.FetchGuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fetched", got.Name)
	assert.Equal(t, []string{"FetchGuild"}, rest.calls)
	assert.Empty(t, cache.calls, "Fetch accessors must not consult the cache")
}

func TestGetGuildWithoutCacheCapability(t *testing.T) {
	evt := &GuildUnavailableEvent{
		Base: Base{App: testApp(&recordingREST{}, nil), Shard: testShard(0)},
		ID:   700,
	}
	assert.Nil(t, evt.GetGuild(), "a stateless app simply has no cached guild")
}

func TestGetGuildFallsBackToUnavailable(t *testing.T) {
	cache := &recordingCache{guilds: map[discord.Snowflake]*discord.Guild{
		700: {ID: 700, Unavailable: true},
	}}
	evt := &GuildUnavailableEvent{
		Base: Base{App: testApp(&recordingREST{}, cache), Shard: testShard(0)},
		ID:   700,
	}

	got := evt.GetGuild()
	require.NotNil(t, got)
	assert.True(t, got.Unavailable)
	assert.Equal(t, []string{"GetAvailableGuild", "GetUnavailableGuild"}, cache.calls)
}

// Once the bot has left a guild the REST fetch is meaningless; the call
// must fail fast without ever reaching the transport.
func TestGuildLeaveFetchGuildUnreachable(t *testing.T) {
	rest := &recordingREST{}
	evt := &GuildLeaveEvent{
		Base: Base{App: testApp(rest, nil), Shard: testShard(0)},
		ID:   700,
		Old:  &discord.Guild{ID: 700, Name: "gone"},
	}

	_, err := evt.FetchGuild(context.Background())
	assert.ErrorIs(t, err, discord.ErrUnreachableOperation)
	assert.Empty(t, rest.calls)

	// The cached snapshot remains reachable.
	assert.Equal(t, "gone", evt.Old.Name)
}

func TestFetchHonoursCancellation(t *testing.T) {
	rest := &recordingREST{}
	evt := &GuildUpdateEvent{
		Base:  Base{App: testApp(rest, nil), Shard: testShard(0)},
		Guild: &discord.Guild{ID: 700},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evt.FetchGuild(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
