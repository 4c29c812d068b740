package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender delivers a push message to a single registered device token.
type Sender interface {
	Send(ctx context.Context, deviceToken string, title string, content string) error
}

type FCMSender struct {
	client *messaging.Client
}

func CreateNewFCMSender(ctx context.Context, credentialsFile string) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating messaging client: %w", err)
	}

	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, deviceToken string, title string, content string) error {
	message := &messaging.Message{
		Token: deviceToken,
		Data: map[string]string{
			"title":   title,
			"content": content,
		},
	}

	_, err := s.client.Send(ctx, message)

	return err
}
