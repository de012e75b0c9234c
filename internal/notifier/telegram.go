package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultAPIBaseURL = "https://api.telegram.org"

// telegram sendMessage payload
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// TelegramNotifier delivers messages to a fixed set of Telegram chats.
// Delivery is fire-and-forget: one attempt per chat per call, no retry,
// and one chat failing never blocks the others.
type TelegramNotifier struct {
	token   string
	chatIDs []string
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewTelegramNotifier(token string, chatIDs []string, baseURL string, log zerolog.Logger) *TelegramNotifier {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	return &TelegramNotifier{
		token:   token,
		chatIDs: chatIDs,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Notify sends text to every configured chat independently. It returns
// false when no chat is configured or when at least one delivery failed.
// The result is advisory; callers log it but never retry.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) bool {
	if n.token == "" || len(n.chatIDs) == 0 {
		n.log.Warn().Msg("telegram not configured, dropping notification")
		return false
	}

	ok := true
	for _, chatID := range n.chatIDs {
		if err := n.send(ctx, chatID, text); err != nil {
			n.log.Error().Err(err).Str("chat_id", chatID).Msg("telegram delivery failed")
			ok = false
			continue
		}
		n.log.Debug().Str("chat_id", chatID).Msg("telegram message delivered")
	}

	return ok
}

func (n *TelegramNotifier) send(ctx context.Context, chatID, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram API returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
