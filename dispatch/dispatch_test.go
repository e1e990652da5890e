package dispatch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcord/driftcord/discord"
	"github.com/driftcord/driftcord/events"
)

func guildUpdate(id discord.Snowflake) *events.GuildUpdateEvent {
	return &events.GuildUpdateEvent{
		Base:  events.Base{App: &discord.App{}},
		Guild: &discord.Guild{ID: id, Name: "home"},
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindGuildUpdate, KindOf(guildUpdate(700)))
	assert.Equal(t, KindGuildLeave, KindOf(&events.GuildLeaveEvent{}))
	assert.Equal(t, KindBanCreate, KindOf(&events.BanCreateEvent{}))
	assert.Equal(t, KindPresenceUpdate, KindOf(&events.PresenceUpdateEvent{}))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestDispatchFanOut(t *testing.T) {
	m := NewManager()

	var mu sync.Mutex
	var seen []events.Event
	for i := 0; i < 5; i++ {
		m.AddHandler(func(ctx context.Context, evt events.Event) {
			mu.Lock()
			seen = append(seen, evt)
			mu.Unlock()
		}, KindGuildUpdate)
	}

	evt := guildUpdate(700)
	m.Dispatch(context.Background(), evt)
	m.Wait()

	require.Len(t, seen, 5)
	for _, got := range seen {
		// Every handler observes the same snapshot, not a copy.
		assert.Same(t, evt, got)
	}
}

func TestDispatchRoutesByKind(t *testing.T) {
	m := NewManager()

	var mu sync.Mutex
	counts := map[Kind]int{}
	count := func(kind Kind) Handler {
		return func(ctx context.Context, evt events.Event) {
			mu.Lock()
			counts[kind]++
			mu.Unlock()
		}
	}
	m.AddHandler(count(KindGuildUpdate), KindGuildUpdate)
	m.AddHandler(count(KindBanCreate), KindBanCreate)

	m.DispatchSync(context.Background(), guildUpdate(700))
	m.DispatchSync(context.Background(), guildUpdate(701))
	m.DispatchSync(context.Background(), &events.BanCreateEvent{
		Base: events.Base{App: &discord.App{}},
		ID:   700,
		User: &discord.User{ID: 42},
	})

	assert.Equal(t, 2, counts[KindGuildUpdate])
	assert.Equal(t, 1, counts[KindBanCreate])
}

func TestHandlerSubscribedToMultipleKinds(t *testing.T) {
	m := NewManager()

	var mu sync.Mutex
	var kinds []Kind
	m.AddHandler(func(ctx context.Context, evt events.Event) {
		mu.Lock()
		kinds = append(kinds, KindOf(evt))
		mu.Unlock()
	}, KindGuildUpdate, KindGuildLeave)

	m.DispatchSync(context.Background(), guildUpdate(700))
	m.DispatchSync(context.Background(), &events.GuildLeaveEvent{
		Base: events.Base{App: &discord.App{}},
		ID:   700,
	})

	assert.ElementsMatch(t, []Kind{KindGuildUpdate, KindGuildLeave}, kinds)
}

// A panicking handler must not take down the dispatcher or its siblings.
func TestDispatchRecoversPanics(t *testing.T) {
	m := NewManager()

	var ran bool
	var mu sync.Mutex
	m.AddHandler(func(ctx context.Context, evt events.Event) {
		panic("handler bug")
	}, KindGuildUpdate)
	m.AddHandler(func(ctx context.Context, evt events.Event) {
		mu.Lock()
		ran = true
		mu.Unlock()
	}, KindGuildUpdate)

	assert.NotPanics(t, func() {
		m.DispatchSync(context.Background(), guildUpdate(700))
	})
	assert.True(t, ran, "sibling handlers still run")
}

func TestDispatchDropsUnknownEvents(t *testing.T) {
	m := NewManager()

	called := false
	m.AddHandler(func(ctx context.Context, evt events.Event) {
		called = true
	}, KindGuildUpdate)

	m.DispatchSync(context.Background(), nil)
	assert.False(t, called)
}

func TestChunkNonce(t *testing.T) {
	first := ChunkNonce()
	second := ChunkNonce()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	// Nonces are snowflakes, so they parse and carry a sane timestamp.
	s, err := discord.ParseSnowflake(first)
	require.NoError(t, err)
	assert.False(t, s.Time().IsZero())
}
