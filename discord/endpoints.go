package discord

// Known endpoint bases. Only URL building lives here; issuing requests is
// the REST collaborator's job.
var (
	EndpointBase = "https://discord.com"
	EndpointCDN  = "https://cdn.discordapp.com"
)

// EndpointApplicationCover builds the CDN path for an application cover
// image, without query parameters.
func EndpointApplicationCover(applicationID Snowflake, hash, format string) string {
	return EndpointCDN + "/app-icons/" + applicationID.String() + "/" + hash + "." + format
}

// EndpointMessageLink builds the client jump link for a message. guildPart is
// either a guild ID string or "@me" for DM channels.
func EndpointMessageLink(guildPart string, channelID, messageID Snowflake) string {
	return EndpointBase + "/channels/" + guildPart + "/" + channelID.String() + "/" + messageID.String()
}
