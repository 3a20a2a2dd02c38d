// Package rabbitmq relays committed POS events to a fanout exchange so
// back-office consumers outside the WebSocket fan-out can follow along.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
)

const eventsExchange = "pos.events"

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string // default "/"
}

type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	lg   *logger.Logger
}

func Dial(cfg Config, lg *logger.Logger) (*Client, error) {
	if cfg.VHost == "" {
		cfg.VHost = "/"
	}
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.VHost)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(eventsExchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Client{conn: conn, ch: ch, lg: lg}, nil
}

func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Broadcast publishes the event persistently. Delivery is best-effort: a
// broker failure is logged, never surfaced to the request that committed.
func (c *Client) Broadcast(e domain.Event) {
	body, err := json.Marshal(e)
	if err != nil {
		c.lg.Error("event_marshal_failed", err, map[string]any{"type": e.Type})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = c.ch.PublishWithContext(ctx, eventsExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		c.lg.Error("event_publish_failed", err, map[string]any{"type": e.Type})
	}
}
