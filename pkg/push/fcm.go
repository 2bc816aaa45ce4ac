package push

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/clothesguard/api/internal/model"
)

// Service delivers notifications to subscribed devices via FCM. All
// methods are nil-safe so the rest of the system can ignore whether push
// is configured.
type Service struct {
	client *messaging.Client
	topic  string
}

// New creates an FCM push service. Returns nil (disabled) when no
// credentials file is configured or Firebase cannot be initialized;
// startup is never blocked on push availability.
func New(credentialsFile, topic string) (*Service, error) {
	if credentialsFile == "" {
		log.Println("⚠️  Firebase credentials not provided, push delivery disabled")
		return nil, nil
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("⚠️  Failed to initialize Firebase app: %v (push delivery disabled)", err)
		return nil, nil
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("⚠️  Failed to get messaging client: %v", err)
		return nil, nil
	}

	log.Println("✅ Firebase FCM initialized")
	return &Service{client: client, topic: topic}, nil
}

// SendAlert publishes a created notification to the alert topic
func (s *Service) SendAlert(ctx context.Context, n *model.Notification) error {
	if s == nil || s.client == nil {
		return nil
	}

	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: n.Tipo,
			Body:  n.Descripcion,
		},
		Data: map[string]string{
			"id":        n.ID.String(),
			"usuarioId": n.UsuarioID,
			"prioridad": string(n.Prioridad),
		},
		Android: &messaging.AndroidConfig{
			Priority: androidPriority(n.Prioridad),
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("error sending push message: %w", err)
	}
	return nil
}

func androidPriority(p model.Priority) string {
	if p == model.PriorityHigh {
		return "high"
	}
	return "normal"
}
