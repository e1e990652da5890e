package discord

// Cache is the synchronous lookup capability backed by gateway state.
// Implementations never block on the network and never return an error for
// a miss; a nil result means "not cached". The storage and eviction policy
// behind this interface is the implementation's concern.
type Cache interface {
	// GetAvailableGuild returns the cached guild if it is known and
	// currently available.
	GetAvailableGuild(id Snowflake) *Guild
	// GetUnavailableGuild returns the cached guild if it is known but
	// currently unavailable due to an outage.
	GetUnavailableGuild(id Snowflake) *Guild
	GetUser(id Snowflake) *User
	GetMember(guildID, userID Snowflake) *Member
	GetRole(id Snowflake) *Role
}

// Shard is an opaque handle for the gateway connection an event arrived on.
// It is exposed read-only so sharding-aware handlers can route work.
type Shard interface {
	ID() int
}

// App bundles the capabilities entities and events use to resolve
// references. REST is always present; Cache is optional and must be checked
// for presence before use (a stateless application simply leaves it nil).
type App struct {
	REST  REST
	Cache Cache
}

// HasCache reports whether the application keeps gateway state.
func (a *App) HasCache() bool {
	return a != nil && a.Cache != nil
}
