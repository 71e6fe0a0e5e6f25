package discord

import (
	"fmt"
	"time"
)

const (
	// webhookBaseURL is the Discord webhook API endpoint.
	webhookBaseURL = "https://discord.com/api/webhooks"
	// requestTimeout bounds each webhook call.
	requestTimeout = 10 * time.Second
)

// Embed colors.
const (
	colorError   = 0xE74C3C
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
)

func webhookURL(id, token string) string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, id, token)
}
