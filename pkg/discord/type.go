package discord

import "insight-srv/pkg/log"

// discordImpl implements IDiscord.
type discordImpl struct {
	l          log.Logger
	webhookURL string
}

// webhookMessage is the Discord webhook request body.
type webhookMessage struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
}
