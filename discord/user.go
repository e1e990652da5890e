package discord

// User is a fully populated Discord user.
type User struct {
	ID            Snowflake `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	GlobalName    string    `json:"global_name,omitzero"`
	Avatar        string    `json:"avatar,omitzero"`
	Bot           bool      `json:"bot,omitzero"`
	System        bool      `json:"system,omitzero"`
}

// DisplayName returns the global name when set, falling back to the
// username.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// PartialUser carries only the user fields present in an update payload.
// ID is always present.
type PartialUser struct {
	ID            Snowflake           `json:"id"`
	Username      UndefinedOr[string] `json:"username,omitzero"`
	Discriminator UndefinedOr[string] `json:"discriminator,omitzero"`
	GlobalName    UndefinedOr[string] `json:"global_name,omitzero"`
	Avatar        UndefinedOr[string] `json:"avatar,omitzero"`
	Bot           UndefinedOr[bool]   `json:"bot,omitzero"`
}

// Member is a user's guild-specific profile.
type Member struct {
	GuildID Snowflake   `json:"guild_id,omitzero"`
	User    *User       `json:"user,omitzero"`
	Nick    string      `json:"nick,omitzero"`
	Roles   []Snowflake `json:"roles"`
	Pending bool        `json:"pending,omitzero"`
	Deaf    bool        `json:"deaf,omitzero"`
	Mute    bool        `json:"mute,omitzero"`
}

// DisplayName returns the nickname when set, otherwise the user's display
// name.
func (m *Member) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User != nil {
		return m.User.DisplayName()
	}
	return ""
}
