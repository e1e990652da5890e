package discord

// Mentions describes who a message notifies. It back-references its owning
// message so lookups can use the message's guild and capability context;
// the reference is non-owning and the mentions never outlive the message.
type Mentions struct {
	message *PartialMessage

	// Users maps notified user IDs to the user objects Discord attached
	// to the payload.
	Users UndefinedOr[map[Snowflake]User]
	// RoleIDs are the IDs of the roles notified by the message.
	RoleIDs UndefinedOr[[]Snowflake]
	// Channels are the crosspost channel mentions, keyed by channel ID.
	// Always empty for non-crossposted messages.
	Channels UndefinedOr[map[Snowflake]PartialChannel]
	// Everyone is whether the message notifies via @everyone or @here.
	Everyone UndefinedOr[bool]
}

// NewMentions binds a mentions description to its owning message.
func NewMentions(
	message *PartialMessage,
	users UndefinedOr[map[Snowflake]User],
	roleIDs UndefinedOr[[]Snowflake],
	channels UndefinedOr[map[Snowflake]PartialChannel],
	everyone UndefinedOr[bool],
) *Mentions {
	return &Mentions{
		message:  message,
		Users:    users,
		RoleIDs:  roleIDs,
		Channels: channels,
		Everyone: everyone,
	}
}

// UserIDs returns the notified user IDs, undefined iff Users is undefined.
func (m *Mentions) UserIDs() UndefinedOr[[]Snowflake] {
	return mapKeys(m.Users)
}

// ChannelIDs returns the mentioned channel IDs, undefined iff Channels is
// undefined.
func (m *Mentions) ChannelIDs() UndefinedOr[[]Snowflake] {
	return mapKeys(m.Channels)
}

func mapKeys[V any](m UndefinedOr[map[Snowflake]V]) UndefinedOr[[]Snowflake] {
	values, ok := m.Get()
	if !ok {
		if m.IsNull() {
			return Null[[]Snowflake]()
		}
		return None[[]Snowflake]()
	}
	ids := make([]Snowflake, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	return Some(ids)
}

// GetMembers discovers the cached members notified by this message.
//
// The result is undefined iff the user mention list itself is undefined.
// Otherwise it is a mapping holding only the IDs the cache had an answer
// for: misses are silently dropped, never synthesized. An empty map
// therefore means "specified, but nothing cached" — including when the
// application has no cache capability or the message is outside a guild.
func (m *Mentions) GetMembers() UndefinedOr[map[Snowflake]*Member] {
	users, ok := m.Users.Get()
	if !ok && !m.Users.IsNull() {
		return None[map[Snowflake]*Member]()
	}

	results := make(map[Snowflake]*Member, len(users))
	if !m.message.App.HasCache() || m.message.GuildID == nil {
		return Some(results)
	}

	guildID := *m.message.GuildID
	for id := range users {
		// An ID evicted from the cache between mentions being built
		// and this lookup is indistinguishable from a plain miss, and
		// is treated as one.
		if member := m.message.App.Cache.GetMember(guildID, id); member != nil {
			results[id] = member
		}
	}
	return Some(results)
}

// GetRoles looks up the cached roles notified by this message. Same
// tri-state contract as GetMembers.
func (m *Mentions) GetRoles() UndefinedOr[map[Snowflake]*Role] {
	roleIDs, ok := m.RoleIDs.Get()
	if !ok && !m.RoleIDs.IsNull() {
		return None[map[Snowflake]*Role]()
	}

	results := make(map[Snowflake]*Role, len(roleIDs))
	if !m.message.App.HasCache() || m.message.GuildID == nil {
		return Some(results)
	}

	for _, id := range roleIDs {
		if role := m.message.App.Cache.GetRole(id); role != nil {
			results[id] = role
		}
	}
	return Some(results)
}
