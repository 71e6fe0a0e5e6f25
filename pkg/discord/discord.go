package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (d *discordImpl) send(ctx context.Context, msg webhookMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook message: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// SendMessage sends a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, webhookMessage{Content: content})
}

// SendError sends an error embed. The wrapped error is appended to the description.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	desc := description
	if err != nil {
		desc = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.send(ctx, webhookMessage{
		Embeds: []embed{{Title: title, Description: desc, Color: colorError}},
	})
}

// SendSuccess sends a success embed.
func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.send(ctx, webhookMessage{
		Embeds: []embed{{Title: title, Description: description, Color: colorSuccess}},
	})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.send(ctx, webhookMessage{
		Embeds: []embed{{Title: title, Description: description, Color: colorWarning}},
	})
}

// GetWebhookURL returns the configured webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return d.webhookURL
}

// Close is a no-op; the notifier holds no persistent connection.
func (d *discordImpl) Close() error {
	return nil
}
