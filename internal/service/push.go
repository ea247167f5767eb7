package service

import (
	"context"
	"fmt"

	"star-gestao-backend/internal/logger"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebasePusher struct {
	client *messaging.Client
	topic  string
}

// NewFirebasePusher initializes a Firebase app from a service account file
// and returns a Pusher sending to topic.
func NewFirebasePusher(ctx context.Context, credentialsFile, projectID, topic string) (Pusher, error) {
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}
	app, err := firebase.NewApp(ctx, cfg, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase messaging: %w", err)
	}
	return &firebasePusher{client: client, topic: topic}, nil
}

func (p *firebasePusher) Push(ctx context.Context, title, body string, data map[string]string) error {
	logger.ExternalServiceCall("firebase", "Send", "topic", p.topic)
	id, err := p.client.Send(ctx, &messaging.Message{
		Topic:        p.topic,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	})
	if err != nil {
		err = fmt.Errorf("failed to send push notification: %w", err)
		logger.ExternalServiceResult("firebase", "Send", err)
		return err
	}
	logger.ExternalServiceResult("firebase", "Send", nil, "messageID", id)
	return nil
}
