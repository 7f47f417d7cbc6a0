package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"scout/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher delivers profile events to a Google Cloud Pub/Sub
// topic. Events are JSON payloads; kind, uid and request_id ride along as
// message attributes so subscribers can filter without decoding.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the project and verifies the topic
// exists before accepting any events.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishProfileEvent publishes one profile event and waits for the server
// acknowledgement.
func (p *googlePubSubPublisher) PublishProfileEvent(ctx context.Context, event *service.ProfileEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published",
		slog.String("kind", event.Kind),
		slog.String("uid", event.UID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close stops the publisher and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// eventAttributes builds the filterable message attributes shared by every
// publisher backend.
func eventAttributes(event *service.ProfileEvent) map[string]string {
	attributes := map[string]string{
		"kind": event.Kind,
		"uid":  event.UID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
