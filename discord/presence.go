package discord

// Status is a user's online status.
type Status string

const (
	StatusOnline       Status = "online"
	StatusIdle         Status = "idle"
	StatusDoNotDisturb Status = "dnd"
	StatusOffline      Status = "offline"
)

// ActivityType is the type of a presence activity.
type ActivityType int

const (
	ActivityTypePlaying   ActivityType = 0
	ActivityTypeStreaming ActivityType = 1
	ActivityTypeListening ActivityType = 2
	ActivityTypeWatching  ActivityType = 3
	ActivityTypeCustom    ActivityType = 4
	ActivityTypeCompeting ActivityType = 5
)

// Activity is a single rich presence activity.
type Activity struct {
	Name string       `json:"name"`
	Type ActivityType `json:"type"`
	URL  string       `json:"url,omitzero"`
}

// Presence is a member's presence in a specific guild.
type Presence struct {
	UserID     Snowflake  `json:"user_id"`
	GuildID    Snowflake  `json:"guild_id"`
	Status     Status     `json:"status"`
	Activities []Activity `json:"activities,omitzero"`
}

// VoiceState is a user's voice connection state within a guild.
type VoiceState struct {
	UserID    Snowflake `json:"user_id"`
	GuildID   Snowflake `json:"guild_id,omitzero"`
	ChannelID Snowflake `json:"channel_id,omitzero"`
	SessionID string    `json:"session_id"`
	Deaf      bool      `json:"deaf,omitzero"`
	Mute      bool      `json:"mute,omitzero"`
	SelfDeaf  bool      `json:"self_deaf,omitzero"`
	SelfMute  bool      `json:"self_mute,omitzero"`
	Suppress  bool      `json:"suppress,omitzero"`
}
