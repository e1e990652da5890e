package dispatch

import (
	"github.com/bwmarrin/snowflake"

	"github.com/driftcord/driftcord/discord"
)

var nonceNode *snowflake.Node

func init() {
	snowflake.Epoch = discord.Epoch
	node, err := snowflake.NewNode(0)
	if err != nil {
		panic(err)
	}
	nonceNode = node
}

// ChunkNonce generates the nonce attached to member chunk requests and
// echoed back on GuildAvailableEvent. Nonces are snowflakes so they stay
// unique across shards and sortable by request time.
func ChunkNonce() string {
	return nonceNode.Generate().String()
}
