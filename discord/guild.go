package discord

// Guild is a guild as seen over the gateway. When the guild is unavailable
// due to an outage only ID and Unavailable are meaningful.
type Guild struct {
	ID          Snowflake `json:"id"`
	Name        string    `json:"name,omitzero"`
	Icon        string    `json:"icon,omitzero"`
	OwnerID     Snowflake `json:"owner_id,omitzero"`
	MemberCount int       `json:"member_count,omitzero"`
	Large       bool      `json:"large,omitzero"`
	Unavailable bool      `json:"unavailable,omitzero"`
}

// GuildPreview is the public preview of a guild, fetched over REST.
type GuildPreview struct {
	ID                       Snowflake `json:"id"`
	Name                     string    `json:"name"`
	Icon                     string    `json:"icon,omitzero"`
	Description              string    `json:"description,omitzero"`
	ApproximateMemberCount   int       `json:"approximate_member_count"`
	ApproximatePresenceCount int       `json:"approximate_presence_count"`
	Emojis                   []Emoji   `json:"emojis"`
}

// Role is a guild role.
type Role struct {
	ID          Snowflake `json:"id"`
	GuildID     Snowflake `json:"guild_id,omitzero"`
	Name        string    `json:"name"`
	Color       int       `json:"color,omitzero"`
	Hoist       bool      `json:"hoist,omitzero"`
	Position    int       `json:"position,omitzero"`
	Permissions int64     `json:"permissions,string,omitzero"`
	Managed     bool      `json:"managed,omitzero"`
	Mentionable bool      `json:"mentionable,omitzero"`
}

// Emoji is a custom guild emoji. Unicode emojis are represented with a zero
// ID and the literal in Name.
type Emoji struct {
	ID        Snowflake   `json:"id,omitzero"`
	GuildID   Snowflake   `json:"guild_id,omitzero"`
	Name      string      `json:"name"`
	RoleIDs   []Snowflake `json:"roles,omitzero"`
	Animated  bool        `json:"animated,omitzero"`
	Managed   bool        `json:"managed,omitzero"`
	Available bool        `json:"available,omitzero"`
}

// IsUnicode reports whether the emoji is a plain unicode emoji rather than
// a custom one.
func (e *Emoji) IsUnicode() bool {
	return e.ID == 0
}

// GuildBan is the audit detail of a ban, fetched over REST.
type GuildBan struct {
	Reason string `json:"reason,omitzero"`
	User   User   `json:"user"`
}

// IntegrationAccount is the external account an integration is bound to.
type IntegrationAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IntegrationApplication is the bot application attached to an integration,
// present only for Discord-type integrations.
type IntegrationApplication struct {
	ID          Snowflake `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitzero"`
	Bot         *User     `json:"bot,omitzero"`
}

// Integration is a guild integration (twitch, youtube or discord).
type Integration struct {
	ID                Snowflake                 `json:"id"`
	GuildID           Snowflake                 `json:"guild_id,omitzero"`
	Name              string                    `json:"name"`
	Type              string                    `json:"type"`
	Enabled           bool                      `json:"enabled"`
	Syncing           bool                      `json:"syncing,omitzero"`
	RoleID            Snowflake                 `json:"role_id,omitzero"`
	ExpireBehavior    IntegrationExpireBehavior `json:"expire_behavior,omitzero"`
	ExpireGracePeriod int                       `json:"expire_grace_period,omitzero"`
	User              *User                     `json:"user,omitzero"`
	Account           IntegrationAccount        `json:"account"`
	Application       *IntegrationApplication   `json:"application,omitzero"`
}

// IntegrationExpireBehavior is what happens to a member when their
// integration subscription lapses.
type IntegrationExpireBehavior int

const (
	IntegrationExpireRemoveRole IntegrationExpireBehavior = 0
	IntegrationExpireKick       IntegrationExpireBehavior = 1
)
