package messenger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// graphURL is the Meta Graph API root the Cloud API lives under.
const graphURL = "https://graph.facebook.com/v21.0"

// WhatsApp sends notifications through the WhatsApp Business Cloud API.
type WhatsApp struct {
	apiURL  string
	token   string
	phoneID string
	hc      *http.Client
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

type whatsAppText struct {
	Body string `json:"body"`
}

// NewWhatsApp creates a WhatsApp dispatcher for the given access token
// and phone number id.
func NewWhatsApp(token, phoneID string) *WhatsApp {
	return &WhatsApp{
		apiURL:  graphURL,
		token:   token,
		phoneID: phoneID,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers one text message to a phone number.
func (w *WhatsApp) Send(recipient, message string) error {
	body, err := json.Marshal(whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               recipient,
		Type:             "text",
		Text:             whatsAppText{Body: message},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp message: %w", err)
	}

	addr := fmt.Sprintf("%s/%s/messages", w.apiURL, w.phoneID)
	req, err := http.NewRequest(http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.hc.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The Cloud API explains rejections in the body, keep it in the error.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("whatsapp send returned status %d: %s", resp.StatusCode, detail)
	}

	slog.Debug("notification sent", "recipient", recipient)
	return nil
}
