package discord

import "errors"

var (
	// ErrWebhookRequired is returned when webhook ID or token is missing.
	ErrWebhookRequired = errors.New("discord: webhook ID and token are required")
)
