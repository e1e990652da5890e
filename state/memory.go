// Package state provides a reference in-memory implementation of
// discord.Cache. It exists so applications and tests have a working cache
// capability out of the box; sharded or persistent caches stay behind the
// same interface.
package state

import (
	"time"

	"github.com/karlseguin/ccache"

	"github.com/driftcord/driftcord/discord"
)

// DefaultMaxSize is the default number of entries kept before the LRU
// starts evicting.
const DefaultMaxSize = 50000

// itemTTL is effectively "no expiry"; gateway state is invalidated by
// events, not by time. Eviction pressure is handled by the LRU.
const itemTTL = 365 * 24 * time.Hour

// Memory is an LRU-backed discord.Cache. All methods are safe for
// concurrent use; a miss is a nil return, never an error.
type Memory struct {
	cache *ccache.Cache
}

var _ discord.Cache = (*Memory)(nil)

// NewMemory creates a memory cache bounded to maxSize entries, or
// DefaultMaxSize when maxSize <= 0.
func NewMemory(maxSize int64) *Memory {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Memory{
		cache: ccache.New(ccache.Configure().MaxSize(maxSize)),
	}
}

func (m *Memory) get(key string) interface{} {
	item := m.cache.Get(key)
	if item == nil || item.Expired() {
		return nil
	}
	return item.Value()
}

func guildKey(id discord.Snowflake) string { return "guild:" + id.String() }
func userKey(id discord.Snowflake) string  { return "user:" + id.String() }
func roleKey(id discord.Snowflake) string  { return "role:" + id.String() }
func memberKey(guildID, userID discord.Snowflake) string {
	return "member:" + guildID.String() + ":" + userID.String()
}

// PutGuild stores a guild snapshot. The guild's Unavailable flag decides
// which of the two guild lookups will return it.
func (m *Memory) PutGuild(guild *discord.Guild) {
	m.cache.Set(guildKey(guild.ID), guild, itemTTL)
}

// DeleteGuild drops a guild snapshot, e.g. after a leave event.
func (m *Memory) DeleteGuild(id discord.Snowflake) {
	m.cache.Delete(guildKey(id))
}

func (m *Memory) GetAvailableGuild(id discord.Snowflake) *discord.Guild {
	if g, ok := m.get(guildKey(id)).(*discord.Guild); ok && !g.Unavailable {
		return g
	}
	return nil
}

func (m *Memory) GetUnavailableGuild(id discord.Snowflake) *discord.Guild {
	if g, ok := m.get(guildKey(id)).(*discord.Guild); ok && g.Unavailable {
		return g
	}
	return nil
}

// PutUser stores a user snapshot.
func (m *Memory) PutUser(user *discord.User) {
	m.cache.Set(userKey(user.ID), user, itemTTL)
}

func (m *Memory) GetUser(id discord.Snowflake) *discord.User {
	if u, ok := m.get(userKey(id)).(*discord.User); ok {
		return u
	}
	return nil
}

// PutMember stores a member snapshot under its guild.
func (m *Memory) PutMember(guildID discord.Snowflake, member *discord.Member) {
	if member.User == nil {
		return
	}
	m.cache.Set(memberKey(guildID, member.User.ID), member, itemTTL)
}

// DeleteMember drops a member, e.g. after a remove event.
func (m *Memory) DeleteMember(guildID, userID discord.Snowflake) {
	m.cache.Delete(memberKey(guildID, userID))
}

func (m *Memory) GetMember(guildID, userID discord.Snowflake) *discord.Member {
	if mem, ok := m.get(memberKey(guildID, userID)).(*discord.Member); ok {
		return mem
	}
	return nil
}

// PutRole stores a role snapshot.
func (m *Memory) PutRole(role *discord.Role) {
	m.cache.Set(roleKey(role.ID), role, itemTTL)
}

// DeleteRole drops a role.
func (m *Memory) DeleteRole(id discord.Snowflake) {
	m.cache.Delete(roleKey(id))
}

func (m *Memory) GetRole(id discord.Snowflake) *discord.Role {
	if r, ok := m.get(roleKey(id)).(*discord.Role); ok {
		return r
	}
	return nil
}
