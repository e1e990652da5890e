package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is a map-backed cache capability that records lookups.
type fakeCache struct {
	calls []string

	guilds  map[Snowflake]*Guild
	users   map[Snowflake]*User
	members map[Snowflake]*Member
	roles   map[Snowflake]*Role
}

func (f *fakeCache) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeCache) GetAvailableGuild(id Snowflake) *Guild {
	f.record("GetAvailableGuild")
	if g := f.guilds[id]; g != nil && !g.Unavailable {
		return g
	}
	return nil
}

func (f *fakeCache) GetUnavailableGuild(id Snowflake) *Guild {
	f.record("GetUnavailableGuild")
	if g := f.guilds[id]; g != nil && g.Unavailable {
		return g
	}
	return nil
}

func (f *fakeCache) GetUser(id Snowflake) *User {
	f.record("GetUser")
	return f.users[id]
}

func (f *fakeCache) GetMember(guildID, userID Snowflake) *Member {
	f.record("GetMember")
	return f.members[userID]
}

func (f *fakeCache) GetRole(id Snowflake) *Role {
	f.record("GetRole")
	return f.roles[id]
}

func mentionsWithUsers(rest REST, cache Cache, users UndefinedOr[map[Snowflake]User]) *Mentions {
	msg := newTestMessage(rest, cache)
	msg.Mentions = NewMentions(msg, users,
		None[[]Snowflake](),
		None[map[Snowflake]PartialChannel](),
		None[bool](),
	)
	return msg.Mentions
}

func TestGetMembersUnspecified(t *testing.T) {
	m := mentionsWithUsers(&fakeREST{}, &fakeCache{}, None[map[Snowflake]User]())
	assert.True(t, m.GetMembers().IsUndefined(), "undefined mention list stays undefined")
}

// Three mentioned users with one cached must produce a single-entry map:
// misses are dropped, never synthesized.
func TestGetMembersPartialCacheHits(t *testing.T) {
	cache := &fakeCache{
		members: map[Snowflake]*Member{
			2: {Nick: "cached", Roles: []Snowflake{}},
		},
	}
	rest := &fakeREST{}
	m := mentionsWithUsers(rest, cache, Some(map[Snowflake]User{
		1: {ID: 1},
		2: {ID: 2},
		3: {ID: 3},
	}))

	result := m.GetMembers()
	members, ok := result.Get()
	require.True(t, ok)
	require.Len(t, members, 1)
	assert.Equal(t, "cached", members[2].Nick)

	// The synchronous path must never touch the REST capability.
	assert.Empty(t, rest.calls)
}

func TestGetMembersSpecifiedButNothingCached(t *testing.T) {
	m := mentionsWithUsers(&fakeREST{}, &fakeCache{}, Some(map[Snowflake]User{1: {ID: 1}}))

	members, ok := m.GetMembers().Get()
	require.True(t, ok, "specified-but-no-hits is an empty map, not undefined")
	assert.Empty(t, members)
}

func TestGetMembersWithoutCacheCapability(t *testing.T) {
	m := mentionsWithUsers(&fakeREST{}, nil, Some(map[Snowflake]User{1: {ID: 1}}))

	members, ok := m.GetMembers().Get()
	require.True(t, ok, "a stateless app gets an empty map, not undefined")
	assert.Empty(t, members)
}

func TestGetRoles(t *testing.T) {
	cache := &fakeCache{
		roles: map[Snowflake]*Role{10: {ID: 10, Name: "admin"}},
	}
	msg := newTestMessage(&fakeREST{}, cache)
	msg.Mentions = NewMentions(msg,
		None[map[Snowflake]User](),
		Some([]Snowflake{10, 11}),
		None[map[Snowflake]PartialChannel](),
		None[bool](),
	)

	roles, ok := msg.Mentions.GetRoles().Get()
	require.True(t, ok)
	require.Len(t, roles, 1)
	assert.Equal(t, "admin", roles[10].Name)

	// Undefined role list stays undefined.
	msg.Mentions.RoleIDs = None[[]Snowflake]()
	assert.True(t, msg.Mentions.GetRoles().IsUndefined())
}

func TestMentionIDDerivation(t *testing.T) {
	msg := newTestMessage(&fakeREST{}, nil)
	msg.Mentions = NewMentions(msg,
		Some(map[Snowflake]User{1: {ID: 1}, 2: {ID: 2}}),
		None[[]Snowflake](),
		None[map[Snowflake]PartialChannel](),
		None[bool](),
	)

	ids, ok := msg.Mentions.UserIDs().Get()
	require.True(t, ok)
	assert.ElementsMatch(t, []Snowflake{1, 2}, ids)

	assert.True(t, msg.Mentions.ChannelIDs().IsUndefined())
}
