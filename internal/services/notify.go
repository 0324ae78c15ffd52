package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/orderdesk-dev/orderdesk/internal/logger"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"go.uber.org/zap"
)

type DiscordWebhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type DiscordEmbed struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Color       int                   `json:"color"`
	Fields      []DiscordWebhookField `json:"fields"`
	Timestamp   string                `json:"timestamp"`
}

type DiscordWebhookRequest struct {
	Username string         `json:"username"`
	Embeds   []DiscordEmbed `json:"embeds"`
}

type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type SlackAttachment struct {
	Color     string       `json:"color"`
	Title     string       `json:"title"`
	Fields    []SlackField `json:"fields"`
	Timestamp int64        `json:"ts"`
}

type SlackWebhookRequest struct {
	Username    string            `json:"username"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

const (
	ColorGreen = 65280    // #00FF00 - new order
	ColorBlue  = 255      // #0000FF - contact request
	WebhookBot = "OrderDesk"
)

// Notifier posts new-order and contact-form events to the configured Slack
// and Discord webhooks. Delivery failures are logged, never surfaced to the
// request that triggered them.
type Notifier struct {
	SlackWebhook   string
	DiscordWebhook string

	client *http.Client
}

func NewNotifierFromEnv() *Notifier {
	return &Notifier{
		SlackWebhook:   os.Getenv("SLACK_WEBHOOK"),
		DiscordWebhook: os.Getenv("DISCORD_WEBHOOK"),
		client:         &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notifier) OrderConfirmed(order models.Order, view OrderView) {
	now := time.Now()

	if n.DiscordWebhook != "" {
		payload := DiscordWebhookRequest{
			Username: WebhookBot,
			Embeds: []DiscordEmbed{
				{
					Title:       "New order",
					Description: fmt.Sprintf("Order #%d was submitted by %s.", order.ID, view.Client),
					Color:       ColorGreen,
					Fields: []DiscordWebhookField{
						{Name: "Items", Value: fmt.Sprintf("%d", view.TotalQty), Inline: true},
						{Name: "Total", Value: fmt.Sprintf("%.2f", view.TotalPrice), Inline: true},
					},
					Timestamp: now.Format(time.RFC3339),
				},
			},
		}
		n.post(n.DiscordWebhook, payload, "discord")
	}

	if n.SlackWebhook != "" {
		payload := SlackWebhookRequest{
			Username: WebhookBot,
			Text:     fmt.Sprintf("New order #%d from %s", order.ID, view.Client),
			Attachments: []SlackAttachment{
				{
					Color: "good",
					Title: fmt.Sprintf("Order #%d", order.ID),
					Fields: []SlackField{
						{Title: "Items", Value: fmt.Sprintf("%d", view.TotalQty), Short: true},
						{Title: "Total", Value: fmt.Sprintf("%.2f", view.TotalPrice), Short: true},
					},
					Timestamp: now.Unix(),
				},
			},
		}
		n.post(n.SlackWebhook, payload, "slack")
	}
}

func (n *Notifier) ContactRequested(req models.ContactRequest) {
	now := time.Now()

	if n.DiscordWebhook != "" {
		payload := DiscordWebhookRequest{
			Username: WebhookBot,
			Embeds: []DiscordEmbed{
				{
					Title:       "Contact request",
					Description: req.Comments,
					Color:       ColorBlue,
					Fields: []DiscordWebhookField{
						{Name: "Name", Value: req.Name, Inline: true},
						{Name: "Phone", Value: req.Phone, Inline: true},
					},
					Timestamp: now.Format(time.RFC3339),
				},
			},
		}
		n.post(n.DiscordWebhook, payload, "discord")
	}

	if n.SlackWebhook != "" {
		payload := SlackWebhookRequest{
			Username: WebhookBot,
			Text:     fmt.Sprintf("Contact request from %s (%s)", req.Name, req.Phone),
			Attachments: []SlackAttachment{
				{
					Color:     "#439FE0",
					Title:     req.Comments,
					Timestamp: now.Unix(),
				},
			},
		}
		n.post(n.SlackWebhook, payload, "slack")
	}
}

func (n *Notifier) post(url string, payload interface{}, kind string) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Error("marshal webhook payload", zap.String("kind", kind), zap.Error(err))
		return
	}

	resp, err := n.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		logger.Log.Error("send webhook", zap.String("kind", kind), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		logger.Log.Error("webhook rejected",
			zap.String("kind", kind),
			zap.Int("status", resp.StatusCode))
	}
}
