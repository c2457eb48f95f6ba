// Package mqtt bridges a broker-delivered messaging platform to the bot.
// Inbound user messages arrive on {prefix}/user/{id}/inbound; replies are
// published fire-and-forget to {prefix}/user/{id}/outbound. Delivery
// semantics (ordering, dedup, retries) stay with the platform side.
package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"schedbot/internal/domain"
)

type BridgeConfig struct {
	BrokerURL     string
	ClientID      string
	Username      string
	Password      string
	TopicPrefix   string
	HandleTimeout time.Duration
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, msg domain.Message) (domain.Reply, error)
}

type Bridge struct {
	cfg     BridgeConfig
	client  paho.Client
	handler MessageHandler
	logger  *slog.Logger
}

func NewBridge(cfg BridgeConfig, handler MessageHandler, logger *slog.Logger) *Bridge {
	if cfg.HandleTimeout <= 0 {
		cfg.HandleTimeout = 30 * time.Second
	}
	return &Bridge{cfg: cfg, handler: handler, logger: logger}
}

func (b *Bridge) Start(ctx context.Context) error {
	opts := paho.NewClientOptions().
		AddBroker(b.cfg.BrokerURL).
		SetClientID(b.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	if b.cfg.Username != "" {
		opts.SetUsername(b.cfg.Username)
		opts.SetPassword(b.cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		b.logger.Error("mqtt connection lost", "error", err)
	})

	b.client = paho.NewClient(opts)
	if token := b.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	if token := b.client.Subscribe(TopicUserInbound(b.cfg.TopicPrefix), 1, b.handleInbound); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	go func() {
		<-ctx.Done()
		b.client.Disconnect(100)
	}()

	return nil
}

type inboundPayload struct {
	MessageID string `json:"message_id,omitempty"`
	Text      string `json:"text"`
	TS        string `json:"ts,omitempty"`
}

func (b *Bridge) handleInbound(_ paho.Client, raw paho.Message) {
	platformUserID, err := ParsePlatformUserID(raw.Topic(), b.cfg.TopicPrefix)
	if err != nil {
		b.logger.Warn("skip invalid inbound topic", "topic", raw.Topic(), "error", err)
		return
	}

	var payload inboundPayload
	if err := json.Unmarshal(raw.Payload(), &payload); err != nil {
		b.logger.Warn("invalid inbound payload", "platform_user_id", platformUserID, "error", err)
		return
	}
	if payload.Text == "" {
		return
	}
	if payload.MessageID == "" {
		payload.MessageID = uuid.NewString()
	}

	msg := domain.Message{
		MessageID:      payload.MessageID,
		PlatformUserID: platformUserID,
		Text:           payload.Text,
		ReceivedAt:     time.Now().UTC(),
	}
	if ts, parseErr := time.Parse(time.RFC3339, payload.TS); parseErr == nil {
		msg.ReceivedAt = ts
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.cfg.HandleTimeout)
	defer cancel()

	reply, err := b.handler.HandleMessage(ctx, msg)
	if err != nil {
		b.logger.Error("message handling failed", "message_id", msg.MessageID, "platform_user_id", platformUserID, "error", err)
		reply = domain.Reply{
			MessageID:      msg.MessageID,
			PlatformUserID: platformUserID,
			Text:           "Something went wrong on my side, please try again.",
			Intent:         domain.IntentGeneralChat,
		}
	}
	b.publishReply(reply)
}

func (b *Bridge) publishReply(reply domain.Reply) {
	body, err := json.Marshal(reply)
	if err != nil {
		b.logger.Error("marshal reply failed", "message_id", reply.MessageID, "error", err)
		return
	}
	topic := TopicOutbound(b.cfg.TopicPrefix, reply.PlatformUserID)
	if token := b.client.Publish(topic, 1, false, body); token.Wait() && token.Error() != nil {
		b.logger.Error("publish reply failed", "topic", topic, "error", token.Error())
	}
}
