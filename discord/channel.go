package discord

// ChannelType is the type of a channel. Unknown wire values are preserved.
type ChannelType int

const (
	ChannelTypeGuildText     ChannelType = 0
	ChannelTypeDM            ChannelType = 1
	ChannelTypeGuildVoice    ChannelType = 2
	ChannelTypeGroupDM       ChannelType = 3
	ChannelTypeGuildCategory ChannelType = 4
	ChannelTypeGuildNews     ChannelType = 5
	ChannelTypeNewsThread    ChannelType = 10
	ChannelTypePublicThread  ChannelType = 11
	ChannelTypePrivateThread ChannelType = 12
	ChannelTypeGuildStage    ChannelType = 13
)

// PartialChannel is the reduced channel shape found in crosspost channel
// mentions and REST channel fetches.
type PartialChannel struct {
	ID      Snowflake   `json:"id"`
	GuildID Snowflake   `json:"guild_id,omitzero"`
	Type    ChannelType `json:"type"`
	Name    string      `json:"name,omitzero"`
}

// GuildChannel is a channel belonging to a guild.
type GuildChannel struct {
	ID       Snowflake   `json:"id"`
	GuildID  Snowflake   `json:"guild_id"`
	Type     ChannelType `json:"type"`
	Name     string      `json:"name"`
	Topic    string      `json:"topic,omitzero"`
	ParentID Snowflake   `json:"parent_id,omitzero"`
	Position int         `json:"position,omitzero"`
	NSFW     bool        `json:"nsfw,omitzero"`
}

// IsThread reports whether the channel is a thread. Threads resolve
// permissions through their parent channel.
func (c *GuildChannel) IsThread() bool {
	switch c.Type {
	case ChannelTypeNewsThread, ChannelTypePublicThread, ChannelTypePrivateThread:
		return true
	}
	return false
}
