// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

//go:build nats

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
)

// Subscriber consumes corpus events from JetStream with a durable,
// queue-grouped consumer so multiple instances share the work.
type Subscriber struct {
	subscriber message.Subscriber
	logger     watermill.LoggerAdapter
}

// NewSubscriber connects a JetStream subscriber. url overrides cfg.URL
// so the caller can pass an embedded server's client URL.
func NewSubscriber(cfg Config, url string, logger watermill.LoggerAdapter) (*Subscriber, error) {
	if logger == nil {
		logger = watermill.NewStdLogger(false, false)
	}
	if url == "" {
		url = cfg.URL
	}

	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(nc *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("subscriber disconnected", err, nil)
			}
		}),
	}

	subOpts := []natsgo.SubOpt{
		natsgo.AckWait(cfg.AckWait),
		natsgo.DeliverNew(),
		natsgo.BindStream(cfg.StreamName),
	}

	wmConfig := wmNats.SubscriberConfig{
		URL:              url,
		QueueGroupPrefix: cfg.QueueGroup,
		AckWaitTimeout:   cfg.AckWait,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled:         false,
			AutoProvision:    false, // stream is pre-created by EnsureStream
			AckAsync:         false,
			SubscribeOptions: subOpts,
			DurablePrefix:    cfg.DurableName,
		},
	}

	sub, err := wmNats.NewSubscriber(wmConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill subscriber: %w", err)
	}
	return &Subscriber{subscriber: sub, logger: logger}, nil
}

// HandleCorpusUpdated consumes corpus-updated events until ctx is
// canceled, invoking fn per event. Handler failures nack the message for
// redelivery; unparseable payloads are acked and dropped.
func (s *Subscriber) HandleCorpusUpdated(ctx context.Context, fn func(ctx context.Context, event *CorpusUpdated) error) error {
	messages, err := s.subscriber.Subscribe(ctx, TopicCorpusUpdated)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", TopicCorpusUpdated, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			s.process(ctx, msg, fn)
		}
	}
}

func (s *Subscriber) process(ctx context.Context, msg *message.Message, fn func(ctx context.Context, event *CorpusUpdated) error) {
	event, err := UnmarshalCorpusUpdated(msg.Payload)
	if err != nil {
		// Poison message, redelivery cannot fix it.
		s.logger.Error("corpus-updated payload dropped", err, watermill.LogFields{"message_uuid": msg.UUID})
		msg.Ack()
		return
	}

	if err := fn(ctx, event); err != nil {
		s.logger.Error("corpus-updated handler failed", err, watermill.LogFields{"event_id": event.EventID})
		msg.Nack()
		return
	}
	msg.Ack()
}

// Close shuts the subscriber down.
func (s *Subscriber) Close() error {
	return s.subscriber.Close()
}
